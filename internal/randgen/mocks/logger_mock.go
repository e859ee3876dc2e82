package mocks

import "fmt"

// MockLogger はLoggerのモック実装です
type MockLogger struct {
	Messages []string
}

// Printf はモック実装です
func (m *MockLogger) Printf(format string, a ...any) {
	m.Messages = append(m.Messages, fmt.Sprintf(format, a...))
}
