package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/Loreweave/api/internal/mapgen"
)

const (
	previewMapSize  = 512
	seaLevelStep    = 0.02
	defaultSeaLevel = 0.5
)

var climates = []string{"temperate", "arid", "cold"}

// generationMsg wraps a coordinator response for the bubbletea loop.
type generationMsg mapgen.GenerationResponse

// kickoffMsg triggers the very first generation once the program is running.
type kickoffMsg struct{}

type model struct {
	coordinator *mapgen.Coordinator

	seed       string
	seaLevel   float64
	climateIdx int

	layers  *mapgen.GeneratedMapLayers
	pending bool

	width  int
	height int
}

func newModel(coordinator *mapgen.Coordinator, seed string) model {
	return model{
		coordinator: coordinator,
		seed:        seed,
		seaLevel:    defaultSeaLevel,
	}
}

func (m model) options() mapgen.GenerationOptions {
	return mapgen.NewGenerationOptions(m.seed, previewMapSize, previewMapSize, m.seaLevel, climates[m.climateIdx])
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return kickoffMsg{} },
		m.waitForResponse(),
	)
}

// request issues a generation for the current parameters. Cache hits and
// synchronous fallbacks complete inline; otherwise the matching response
// arrives later through waitForResponse.
func (m *model) request() {
	layers, ready := m.coordinator.Request(m.options())
	if ready {
		m.layers = layers
		m.pending = false
		return
	}
	m.pending = true
}

func (m model) waitForResponse() tea.Cmd {
	return func() tea.Msg {
		return generationMsg(<-m.coordinator.Responses())
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case kickoffMsg:
		m.request()
		return m, nil

	case generationMsg:
		if layers, ok := m.coordinator.Apply(mapgen.GenerationResponse(msg)); ok {
			m.layers = layers
			m.pending = false
		}
		return m, m.waitForResponse()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up":
			m.seaLevel = clamp01(m.seaLevel + seaLevelStep)
			m.request()
		case "down":
			m.seaLevel = clamp01(m.seaLevel - seaLevelStep)
			m.request()
		case "c":
			m.climateIdx = (m.climateIdx + 1) % len(climates)
			m.request()
		case "n":
			m.seed = fmt.Sprintf("world-%d", time.Now().UnixNano()%100000)
			m.request()
		case "backspace":
			if len(m.seed) > 0 {
				m.seed = m.seed[:len(m.seed)-1]
				m.request()
			}
		default:
			// Printable keys extend the seed so a name can be typed in.
			if len(msg.String()) == 1 {
				m.seed += msg.String()
				m.request()
			}
		}
		return m, nil
	}

	return m, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
