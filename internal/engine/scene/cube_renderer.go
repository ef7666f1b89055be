package scene

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/ripple/internal/engine/lighting"
	"github.com/Faultbox/ripple/internal/engine/scene/shaders"
	"github.com/Faultbox/ripple/internal/engine/shader"
	"github.com/Faultbox/ripple/internal/engine/texture"
)

// CubeRenderer draws a unit cube blending two textures.
type CubeRenderer struct {
	program *shader.Program

	vao uint32
	vbo uint32

	textures [2]uint32
	mix      float32
	model    mgl32.Mat4
}

// NewCubeRenderer compiles the cube program and uploads the mesh and textures.
func NewCubeRenderer(tex1, tex2 *image.RGBA) (*CubeRenderer, error) {
	program, err := shader.NewProgram("cube", shaders.CubeVertexShader, shaders.CubeFragmentShader)
	if err != nil {
		return nil, err
	}

	cr := &CubeRenderer{
		program: program,
		mix:     0.2,
		model:   mgl32.Ident4(),
	}
	cr.textures[0] = texture.UploadRGBA(tex1)
	cr.textures[1] = texture.UploadRGBA(tex2)
	cr.uploadMesh(CubeVertices())

	program.Use()
	program.SetInt("uTexture1", 0)
	program.SetInt("uTexture2", 1)

	return cr, nil
}

func (cr *CubeRenderer) uploadMesh(vertices []float32) {
	gl.GenVertexArrays(1, &cr.vao)
	gl.BindVertexArray(cr.vao)

	gl.GenBuffers(1, &cr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, cr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(CubeStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 5*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
}

// Render draws the cube.
func (cr *CubeRenderer) Render(view, projection mgl32.Mat4, light lighting.Directional) {
	cr.program.Use()
	cr.program.SetMat4("uModel", cr.model)
	cr.program.SetMat4("uView", view)
	cr.program.SetMat4("uProjection", projection)
	cr.program.SetFloat("uMix", cr.mix)
	setLight(cr.program, light)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, cr.textures[0])
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, cr.textures[1])

	gl.BindVertexArray(cr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, CubeVertexCount)
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (cr *CubeRenderer) Destroy() {
	if cr.vao != 0 {
		gl.DeleteVertexArrays(1, &cr.vao)
	}
	if cr.vbo != 0 {
		gl.DeleteBuffers(1, &cr.vbo)
	}
	for _, id := range cr.textures {
		texture.Delete(id)
	}
	cr.program.Delete()
}

func setLight(p *shader.Program, light lighting.Directional) {
	p.SetVec3("uLightDir", light.Direction)
	p.SetVec3("uAmbient", light.Ambient)
	p.SetVec3("uDiffuse", light.Diffuse)
}
