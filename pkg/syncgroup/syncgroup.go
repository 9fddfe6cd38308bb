package syncgroup

import (
	"sync"
)

// SyncGroup 是 sync.WaitGroup 的包装器，简化 goroutine 生命周期管理
// 自动管理 Add() 和 Done()，减少遗漏 Done() 的风险
type SyncGroup struct {
	wg sync.WaitGroup

	mu    sync.Mutex
	funcs []func()
}

// NewSyncGroup 创建新的 SyncGroup
func NewSyncGroup() *SyncGroup {
	return &SyncGroup{}
}

// Add 添加一个 goroutine 函数，应在 Run() 之前调用
func (w *SyncGroup) Add(fn func()) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.funcs = append(w.funcs, fn)
}

// Run 启动所有已添加的 goroutine 并清空函数列表，避免重复启动
func (w *SyncGroup) Run() {
	w.mu.Lock()
	fns := w.funcs
	w.funcs = nil
	w.mu.Unlock()

	for _, fn := range fns {
		w.wg.Add(1)
		go func(doFunc func()) {
			defer w.wg.Done()
			doFunc()
		}(fn)
	}
}

// Wait 等待所有 goroutine 完成
func (w *SyncGroup) Wait() {
	w.wg.Wait()
}
