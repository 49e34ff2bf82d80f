package cmd

import (
	"reflect"
	"testing"
)

// 替换 runLauncher 以捕获 cobra 层转交的参数
func captureArgs(t *testing.T, code int) *[]string {
	t.Helper()

	var got []string
	orig := runLauncher
	runLauncher = func(args []string) (int, error) {
		got = args
		return code, nil
	}
	t.Cleanup(func() { runLauncher = orig })
	return &got
}

func TestExecutePassesArgsVerbatim(t *testing.T) {
	got := captureArgs(t, 0)

	rootCmd.SetArgs([]string{"serve", "--port", "9"})
	if code := Execute(); code != 0 {
		t.Errorf("期望退出码 0，实际是 %d", code)
	}

	want := []string{"serve", "--port", "9"}
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("期望转发参数 %v，实际是 %v", want, *got)
	}
}

func TestExecuteDoesNotParseFlags(t *testing.T) {
	got := captureArgs(t, 0)

	// --config 看起来像 flag，必须原样到达启动逻辑
	rootCmd.SetArgs([]string{"--config", "extra"})
	Execute()

	want := []string{"--config", "extra"}
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("期望转发参数 %v，实际是 %v", want, *got)
	}
}

func TestExecuteReturnsChildExitCode(t *testing.T) {
	captureArgs(t, 7)

	rootCmd.SetArgs([]string{})
	if code := Execute(); code != 7 {
		t.Errorf("期望退出码 7，实际是 %d", code)
	}
}
