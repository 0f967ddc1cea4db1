package worker

import "sync"

// Job 是交給 pool 在背景執行的工作，例如回填商品列表快取。
type Job func()

// Pool 定義簡單的背景工作池。
type Pool interface {
	Submit(Job)
	Stop()
}

// NewPool 建立 n 個 worker 的 pool，n <= 0 時視為 1。
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Job)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Job
	wg   sync.WaitGroup
}

func (p *pool) Submit(j Job) {
	p.jobs <- j
}

// Stop 關閉佇列並等待所有 worker 結束。
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
