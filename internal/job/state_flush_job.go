package job

// FlushRequester 持久化请求入口
type FlushRequester interface {
	Request()
}

// StateFlushJob 定期请求保存聚合状态，覆盖不触发保存的变更（如提醒）
type StateFlushJob struct {
	flusher FlushRequester
}

func NewStateFlushJob(flusher FlushRequester) *StateFlushJob {
	return &StateFlushJob{flusher: flusher}
}

func (s *StateFlushJob) Run() {
	s.flusher.Request()
}
