// guilloche - parametric roulette ornaments
// Copyright (C) 2026  The guilloche authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prabinpebam/guilloche"
)

func TestWriteJSON(t *testing.T) {
	p := guilloche.DefaultParams()
	p.Layers.Count = 2

	buf := &bytes.Buffer{}
	require.NoError(t, WriteJSON(buf, p, 800, 600))

	var fig Figure
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fig))
	require.Equal(t, 800, fig.Width)
	require.Equal(t, 600, fig.Height)
	require.Equal(t, "epitrochoid", fig.Family)
	require.Equal(t, 3, fig.Closure)
	require.Len(t, fig.Layers, 2)

	layer := fig.Layers[0]
	require.Equal(t, "M", layer.Path[0].Cmd)
	require.Equal(t, [][]float64{{580, 300}}, layer.Path[0].Pts)
	last := layer.Path[len(layer.Path)-1]
	require.Equal(t, "Z", last.Cmd)
	require.Empty(t, last.Pts)

	// one colour per segment: all path entries except MoveTo and Close
	require.Len(t, layer.Colors, len(layer.Path)-2)
	require.Regexp(t, `^#[0-9a-f]{6}$`, layer.Colors[0])
	require.Positive(t, layer.Length)
}

func TestNewFigureEmpty(t *testing.T) {
	p := guilloche.DefaultParams()
	p.Sweep.Step = 0

	fig := NewFigure(p, 100, 100)
	require.Len(t, fig.Layers, 1)
	require.Empty(t, fig.Layers[0].Path)
	require.Empty(t, fig.Layers[0].Colors)
}
