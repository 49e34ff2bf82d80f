package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MOYIre/AiChat/launcher/pkg/executor"
)

// exitCode 记录 run.py 的退出码，由 Execute 返回给 main
var exitCode int

// runLauncher 执行一次启动，返回子进程的退出码
var runLauncher = func(args []string) (int, error) {
	exe, err := executor.NewPythonExecutor()
	if err != nil {
		return 1, err
	}
	return exe.Run(args)
}

// rootCmd 代表没有子命令时的基础命令
var rootCmd = &cobra.Command{
	Use:   "launcher [--config | 参数...]",
	Short: "聊天机器人启动器",
	Long: `聊天机器人的启动器。

切换到启动器自身所在目录后，把所有参数原样转发给 run.py 执行，
因此可以在任意目录下启动。首个参数为 --config 时只转发 --config，
run.py 会清除旧配置并重新进入配置向导。

示例:
  # 正常启动
  launcher

  # 重新配置 WebSocket 连接
  launcher --config`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := runLauncher(args)
		exitCode = code
		return err
	},
}

// Execute 运行启动器并返回进程应当退出的状态码
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}

func init() {
	// 默认保持安静，只透传 run.py 自己的输出
	if os.Getenv("LAUNCHER_DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.ErrorLevel)
	}
}
