package eventloop

import "sync"

// EventLoop runs posted functions one at a time, high priority ones first.
type EventLoop struct {
	evFunc chan struct{}
	evStop chan struct{}

	highQueue []func()
	lowQueue  []func()

	lock     sync.Mutex
	stopOnce sync.Once
}

func NewEventLoop() *EventLoop {
	return &EventLoop{
		evFunc: make(chan struct{}, 1024),
		evStop: make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (s *EventLoop) Run() {
	for {
		select {
		case <-s.evFunc:
			for f := s.pop(); f != nil; f = s.pop() {
				f()
			}
		case <-s.evStop:
			return
		}
	}
}

func (s *EventLoop) push(high bool, f func()) {
	s.lock.Lock()
	if high {
		s.highQueue = append(s.highQueue, f)
	} else {
		s.lowQueue = append(s.lowQueue, f)
	}
	s.lock.Unlock()
	// a full channel already guarantees Run wakes up and drains the queues
	select {
	case s.evFunc <- struct{}{}:
	default:
	}
}

func (s *EventLoop) pop() func() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if len(s.highQueue) > 0 {
		result := s.highQueue[0]
		s.highQueue = s.highQueue[1:]
		return result
	}
	if len(s.lowQueue) > 0 {
		result := s.lowQueue[0]
		s.lowQueue = s.lowQueue[1:]
		return result
	}
	return nil
}

// Stop ends Run. It may be called any number of times, before or after Run.
func (s *EventLoop) Stop() {
	s.stopOnce.Do(func() {
		close(s.evStop)
	})
}

func (s *EventLoop) Post(f func()) {
	s.push(false, f)
}

func (s *EventLoop) PostHighPri(f func()) {
	s.push(true, f)
}

// Send posts f and waits until it has run.
func (s *EventLoop) Send(f func()) {
	done := make(chan struct{})
	s.push(false, func() {
		f()
		close(done)
	})
	<-done
}
