package driver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return &Manager{candidates: make(map[DeviceType][]Candidate)}
}

func TestManagerQueryPriority(t *testing.T) {
	m := newTestManager()
	build := func(string) (Adapter, error) { return &adapterMock{}, nil }

	m.Register(Info{Label: "low", DeviceType: Camera, Priority: PriorityLow}, build)
	m.Register(Info{Label: "first", DeviceType: Camera, Priority: PriorityNormal}, build)
	m.Register(Info{Label: "high", DeviceType: Camera, Priority: PriorityHigh}, build)
	m.Register(Info{Label: "second", DeviceType: Camera, Priority: PriorityNormal}, build)
	m.Register(Info{Label: "file", DeviceType: File}, build)

	var labels []string
	for _, c := range m.Query(Camera) {
		labels = append(labels, c.Info.Label)
	}
	assert.Equal(t, []string{"high", "first", "second", "low"}, labels)
	assert.Len(t, m.Query(File), 1)
	assert.Empty(t, m.Query(Screen))
}

func TestCandidateBuild(t *testing.T) {
	m := newTestManager()
	errBuild := errors.New("no such device")
	m.Register(Info{Label: "v4l2", DeviceType: Camera}, func(target string) (Adapter, error) {
		if target != "0" {
			return nil, errBuild
		}
		return &adapterMock{}, nil
	})

	c := m.Query(Camera)[0]
	d, err := c.Build("0")
	require.NoError(t, err)
	assert.Equal(t, "v4l2:0", d.Info().Label)
	assert.Equal(t, StateClosed, d.Status())

	_, err = c.Build("1")
	assert.ErrorIs(t, err, errBuild)
}
