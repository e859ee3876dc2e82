package mocks

// MockEntropySource はEntropySourceのモック実装です
type MockEntropySource struct {
	Data  []byte
	Error error
	Calls int
}

// Bytes はモック実装です
func (m *MockEntropySource) Bytes() ([]byte, error) {
	m.Calls++
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Data, nil
}
