package media

import "context"

// MockGenerator is a scripted Generator for tests. Pre-load the result
// fields, then hand it to a Resolver.
type MockGenerator struct {
	// ImageResult and ImageErr script GenerateImage.
	ImageResult *Image
	ImageErr    error

	// StartErr scripts StartVideo.
	StartErr error

	// PollStates is consumed one element per PollVideo call. StartVideo
	// returns the handle in its zero state (not done).
	PollStates []MockVideoState
	PollErr    error

	// Call counters.
	ImageCalls int
	StartCalls int
	PollCalls  int
}

// MockVideoState is one scripted polling observation.
type MockVideoState struct {
	Done bool
	URI  string
}

type mockVideoHandle struct {
	state MockVideoState
}

func (h *mockVideoHandle) Done() bool        { return h.state.Done }
func (h *mockVideoHandle) ResultURI() string { return h.state.URI }

func (m *MockGenerator) GenerateImage(ctx context.Context, prompt string) (*Image, error) {
	m.ImageCalls++
	if m.ImageErr != nil {
		return nil, m.ImageErr
	}
	return m.ImageResult, nil
}

func (m *MockGenerator) StartVideo(ctx context.Context, prompt string) (VideoHandle, error) {
	m.StartCalls++
	if m.StartErr != nil {
		return nil, m.StartErr
	}
	return &mockVideoHandle{}, nil
}

func (m *MockGenerator) PollVideo(ctx context.Context, handle VideoHandle) (VideoHandle, error) {
	m.PollCalls++
	if m.PollErr != nil {
		return nil, m.PollErr
	}
	if len(m.PollStates) == 0 {
		return handle, nil
	}
	next := m.PollStates[0]
	m.PollStates = m.PollStates[1:]
	return &mockVideoHandle{state: next}, nil
}
