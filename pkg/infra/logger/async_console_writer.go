package logger

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

type AsyncConsoleHook struct {
	logChan   chan string
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewAsyncConsoleHook(bufferSize int) *AsyncConsoleHook {
	hook := &AsyncConsoleHook{
		logChan: make(chan string, bufferSize),
		done:    make(chan struct{}),
	}
	hook.wg.Add(1)
	go hook.processLogs()
	return hook
}

func (h *AsyncConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	select {
	case h.logChan <- line:
	default:
	}
	return nil
}

func (h *AsyncConsoleHook) processLogs() {
	defer h.wg.Done()
	for {
		select {
		case line := <-h.logChan:
			fmt.Fprint(os.Stdout, line)
		case <-h.done:
			for {
				select {
				case line := <-h.logChan:
					fmt.Fprint(os.Stdout, line)
				default:
					return
				}
			}
		}
	}
}

func (h *AsyncConsoleHook) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
		h.wg.Wait()
	})
}

func (h *AsyncConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
