// This file is part of mdoutput.
//
// mdoutput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mdoutput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mdoutput.  If not, see <https://www.gnu.org/licenses/>.

package gldisplay

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// render a complete frame and swap buffers
func (dsp *Display) render() {
	w, h := dsp.window.GetSize()
	dsp.io.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})

	frequency := sdl.GetPerformanceFrequency()
	now := sdl.GetPerformanceCounter()
	if dsp.time > 0 && now > dsp.time {
		dsp.io.SetDeltaTime(float32(now-dsp.time) / float32(frequency))
	} else {
		dsp.io.SetDeltaTime(1.0 / 60.0)
	}
	dsp.time = now

	imgui.NewFrame()
	dsp.drawScreen()
	if dsp.overlay {
		dsp.drawOverlay()
	}
	imgui.Render()

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	dsp.renderDrawData(float32(w), float32(h))

	dsp.window.GLSwap()
}

// the screen texture fills the window
func (dsp *Display) drawScreen() {
	imgui.SetNextWindowPos(imgui.Vec2{})
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.Vec2{})
	imgui.PushStyleVarFloat(imgui.StyleVarWindowBorderSize, 0.0)
	defer imgui.PopStyleVarV(2)

	imgui.BeginV("##screen", nil,
		imgui.WindowFlagsAlwaysAutoResize|imgui.WindowFlagsNoDecoration|
			imgui.WindowFlagsNoSavedSettings|imgui.WindowFlagsNoMove|
			imgui.WindowFlagsNoBringToFrontOnFocus)
	imgui.Image(imgui.TextureID(dsp.screen), imgui.Vec2{X: float32(dsp.width), Y: float32(dsp.height)})
	imgui.End()
}

// the overlay shows the diagnostics text in the top left corner
func (dsp *Display) drawOverlay() {
	if dsp.diagnostics == nil {
		return
	}

	imgui.SetNextWindowPos(imgui.Vec2{X: 4, Y: 4})
	imgui.SetNextWindowBgAlpha(0.6)

	imgui.BeginV("##overlay", nil,
		imgui.WindowFlagsAlwaysAutoResize|imgui.WindowFlagsNoDecoration|
			imgui.WindowFlagsNoSavedSettings|imgui.WindowFlagsNoMove)
	for _, l := range strings.Split(strings.TrimRight(dsp.diagnostics(), "\n"), "\n") {
		imgui.Text(l)
	}
	imgui.End()
}

// render the imgui draw lists with the fixed function pipeline
func (dsp *Display) renderDrawData(winw, winh float32) {
	fbw, fbh := dsp.window.GLGetDrawableSize()
	if fbw <= 0 || fbh <= 0 {
		return
	}

	drawData := imgui.RenderedDrawData()
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbw) / winw,
		Y: float32(fbh) / winh,
	})

	gl.PushAttrib(gl.ENABLE_BIT | gl.COLOR_BUFFER_BIT | gl.TRANSFORM_BIT)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.LIGHTING)
	gl.Enable(gl.SCISSOR_TEST)
	gl.EnableClientState(gl.VERTEX_ARRAY)
	gl.EnableClientState(gl.TEXTURE_COORD_ARRAY)
	gl.EnableClientState(gl.COLOR_ARRAY)
	gl.Enable(gl.TEXTURE_2D)

	gl.Viewport(0, 0, fbw, fbh)
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Ortho(0, float64(winw), float64(winh), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	indexSize := imgui.IndexBufferLayout()

	drawType := gl.UNSIGNED_SHORT
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, _ := list.VertexBuffer()
		indexBuffer, _ := list.IndexBuffer()
		indexOffset := uintptr(indexBuffer)

		gl.VertexPointer(2, gl.FLOAT, int32(vertexSize), unsafe.Pointer(uintptr(vertexBuffer)+uintptr(vertexOffsetPos)))
		gl.TexCoordPointer(2, gl.FLOAT, int32(vertexSize), unsafe.Pointer(uintptr(vertexBuffer)+uintptr(vertexOffsetUv)))
		gl.ColorPointer(4, gl.UNSIGNED_BYTE, int32(vertexSize), unsafe.Pointer(uintptr(vertexBuffer)+uintptr(vertexOffsetCol)))

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				clip := cmd.ClipRect()
				gl.Scissor(int32(clip.X), fbh-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), uint32(drawType), indexOffset)
			}
			indexOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}

	gl.DisableClientState(gl.COLOR_ARRAY)
	gl.DisableClientState(gl.TEXTURE_COORD_ARRAY)
	gl.DisableClientState(gl.VERTEX_ARRAY)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.PopAttrib()
}
