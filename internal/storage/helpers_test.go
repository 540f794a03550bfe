package storage

import "github.com/vovakirdan/tui-flappy/internal/core"

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func emptyFrame() core.InputFrame {
	return core.NewInputFrame()
}
