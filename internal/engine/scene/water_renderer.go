package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/ripple/internal/engine/lighting"
	"github.com/Faultbox/ripple/internal/engine/scene/shaders"
	"github.com/Faultbox/ripple/internal/engine/shader"
	"github.com/Faultbox/ripple/internal/engine/texture"
	"github.com/Faultbox/ripple/internal/engine/water"
)

// heightmapUnit is the texture unit the height field is bound to.
const heightmapUnit = 2

// WaterModel returns the model matrix that maps an N×N grid into a unit
// square centred on the origin, 0.2 below it.
func WaterModel(n int) mgl32.Mat4 {
	fn := float32(n)
	return mgl32.Scale3D(1/fn, 1/fn, 1/fn).
		Mul4(mgl32.Translate3D(-0.5*fn, -0.2*fn, -0.5*fn))
}

// WaterRenderer draws the grid mesh displaced by a height texture.
type WaterRenderer struct {
	program *shader.Program

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	heights *texture.HeightTexture
	model   mgl32.Mat4
	color   mgl32.Vec4
}

// NewWaterRenderer uploads the grid mesh for an n×n field. The height texture
// is stored on backend.
func NewWaterRenderer(n int, color mgl32.Vec4, backend texture.Backend) (*WaterRenderer, error) {
	program, err := shader.NewProgram("water", shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if err != nil {
		return nil, err
	}

	wr := &WaterRenderer{
		program: program,
		heights: texture.NewHeightTexture(backend),
		model:   WaterModel(n),
		color:   color,
	}
	wr.uploadMesh(water.BuildGridMesh(n))

	program.Use()
	program.SetInt("uHeightmap", heightmapUnit)

	return wr, nil
}

func (wr *WaterRenderer) uploadMesh(mesh *water.GridMesh) {
	gl.GenVertexArrays(1, &wr.vao)
	gl.BindVertexArray(wr.vao)

	gl.GenBuffers(1, &wr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &wr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, wr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)
	wr.indexCount = int32(len(mesh.Indices))

	stride := int32(water.VertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// Upload replaces the height texture contents with img.
func (wr *WaterRenderer) Upload(img water.FieldImage) error {
	return wr.heights.Upload(img.Width, img.Height, img.Pix)
}

// Model returns the water model matrix.
func (wr *WaterRenderer) Model() mgl32.Mat4 {
	return wr.model
}

// Render draws the water surface. Nothing is drawn before the first Upload.
func (wr *WaterRenderer) Render(view, projection mgl32.Mat4, light lighting.Directional) {
	if wr.heights.ID() == 0 {
		return
	}

	wr.program.Use()
	wr.program.SetMat4("uModel", wr.model)
	wr.program.SetMat4("uView", view)
	wr.program.SetMat4("uProjection", projection)
	wr.program.SetVec4("uWaterColor", wr.color)
	setLight(wr.program, light)

	gl.ActiveTexture(gl.TEXTURE0 + heightmapUnit)
	gl.BindTexture(gl.TEXTURE_2D, wr.heights.ID())

	gl.BindVertexArray(wr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, wr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (wr *WaterRenderer) Destroy() {
	wr.heights.Release()
	if wr.vao != 0 {
		gl.DeleteVertexArrays(1, &wr.vao)
	}
	if wr.vbo != 0 {
		gl.DeleteBuffers(1, &wr.vbo)
	}
	if wr.ebo != 0 {
		gl.DeleteBuffers(1, &wr.ebo)
	}
	wr.program.Delete()
}
