package executor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

// EntryScript 是启动目标脚本，位于启动器自身目录下
const EntryScript = "run.py"

// PythonExecutor 在启动器所在目录下执行 run.py
type PythonExecutor struct {
	ScriptDir   string // run.py 所在目录，即启动器自身目录
	Interpreter string // Python 3 解释器
}

// NewPythonExecutor 创建新的执行器，定位启动器自身目录和 Python 解释器
func NewPythonExecutor() (*PythonExecutor, error) {
	exePath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("获取启动器路径失败: %v", err)
	}
	if resolved, err := filepath.EvalSymlinks(exePath); err == nil {
		exePath = resolved
	}

	return &PythonExecutor{
		ScriptDir:   filepath.Dir(exePath),
		Interpreter: findInterpreter(),
	}, nil
}

// findInterpreter 查找 Python 3 解释器
// 找不到时保留默认名称，由进程启动阶段报错，不做预先校验
func findInterpreter() string {
	candidates := []string{"python3"}
	if runtime.GOOS == "windows" {
		candidates = []string{"python3", "python"}
	}
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return candidates[0]
}

// BuildArgs 构建 run.py 的参数列表
// 首个参数为 --config 时只转发 --config，其余参数丢弃；否则原样转发全部参数
func (e *PythonExecutor) BuildArgs(args []string) []string {
	if len(args) > 0 && args[0] == "--config" {
		return []string{EntryScript, "--config"}
	}
	return append([]string{EntryScript}, args...)
}

// Run 切换到启动器所在目录并执行 run.py，返回子进程的退出码
func (e *PythonExecutor) Run(args []string) (int, error) {
	if err := os.Chdir(e.ScriptDir); err != nil {
		return 1, fmt.Errorf("切换到启动器目录失败: %v", err)
	}

	scriptArgs := e.BuildArgs(args)
	logrus.Debugf("工作目录: %s", e.ScriptDir)
	logrus.Debugf("解释器: %s", e.Interpreter)
	logrus.Debugf("执行参数: %v", scriptArgs)

	cmd := exec.Command(e.Interpreter, scriptArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 1, fmt.Errorf("启动 run.py 失败: %v", err)
	}
	return 0, nil
}
