package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Loreweave/api/internal/mapgen"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B8B8B"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

type biomeGlyph struct {
	char  string
	color lipgloss.Color
}

var biomeGlyphs = map[mapgen.BiomeKind]biomeGlyph{
	mapgen.BiomeOcean:      {"~", "#1E90FF"},
	mapgen.BiomeBeach:      {".", "#EED9A4"},
	mapgen.BiomeSnow:       {"*", "#FFFFFF"},
	mapgen.BiomeRock:       {"^", "#708090"},
	mapgen.BiomeTaiga:      {"T", "#2E6F40"},
	mapgen.BiomeTundra:     {"-", "#9BB0A5"},
	mapgen.BiomeDesert:     {":", "#EDC9AF"},
	mapgen.BiomeSavanna:    {"v", "#C2B280"},
	mapgen.BiomeGrassland:  {"\"", "#7CFC00"},
	mapgen.BiomeForest:     {"t", "#228B22"},
	mapgen.BiomeRainforest: {"R", "#0B6623"},
}

var riverGlyph = biomeGlyph{"=", "#4FC3F7"}

func (m model) View() string {
	var b strings.Builder

	opts := m.options()
	b.WriteString(titleStyle.Render("Loreweave Terrain Preview"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"seed: %s   sea level: %.2f   climate: %s", opts.Seed, opts.SeaLevel, opts.Climate)))
	if m.pending {
		b.WriteString(pendingStyle.Render("   generating..."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderMap())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type to edit seed · n new seed · up/down sea level · c climate · q quit"))
	return b.String()
}

// renderMap resamples the generated fields at the terminal's resolution.
// The continuous sampler decouples view size from grid size, so resizing
// the window never forces a regeneration.
func (m model) renderMap() string {
	if m.layers == nil {
		return pendingStyle.Render("waiting for first generation...")
	}

	viewW := m.width
	if viewW < 16 || viewW > 160 {
		viewW = 80
	}
	viewH := m.height - 6
	if viewH < 8 || viewH > 60 {
		viewH = 24
	}

	layers := m.layers
	var rows []string
	for y := 0; y < viewH; y++ {
		v := float64(y) / float64(viewH-1)
		var row strings.Builder
		for x := 0; x < viewW; x++ {
			u := float64(x) / float64(viewW-1)

			glyph := glyphAt(layers, u, v)
			row.WriteString(lipgloss.NewStyle().Foreground(glyph.color).Render(glyph.char))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func glyphAt(layers *mapgen.GeneratedMapLayers, u, v float64) biomeGlyph {
	// Rivers are nearest-cell; the continuous fields are bilinear.
	cellX := int(u * float64(layers.CellsX-1))
	cellY := int(v * float64(layers.CellsY-1))
	if layers.River[cellY][cellX] {
		return riverGlyph
	}

	altitude := mapgen.Sample(layers.Height, u, v)
	moisture := mapgen.Sample(layers.Moisture, u, v)
	temperature := mapgen.Sample(layers.Temperature, u, v)

	biome := mapgen.ClassifyBiome(altitude, layers.SeaLevel, moisture, temperature)
	if glyph, ok := biomeGlyphs[biome]; ok {
		return glyph
	}
	return biomeGlyph{"?", "#FF0000"}
}
