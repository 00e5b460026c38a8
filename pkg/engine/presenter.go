package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"raytracer/pkg/tracer"
)

// GLPresenter uploads the framebuffer into a texture and draws it on a
// fullscreen quad
type GLPresenter struct {
	program      uint32
	quadVAO      uint32
	quadVBO      uint32
	quadEBO      uint32
	frameTexture uint32
	texWidth     int
	texHeight    int
}

// NewGLPresenter creates the GL resources. A current GL context is required.
func NewGLPresenter() (*GLPresenter, error) {
	p := &GLPresenter{}

	program, err := createShaderProgram(presentVertexShader, presentFragmentShader)
	if err != nil {
		return nil, err
	}
	p.program = program

	gl.UseProgram(p.program)
	gl.Uniform1i(gl.GetUniformLocation(p.program, gl.Str("frameTexture\x00")), 0)

	p.setupQuad()
	p.setupTexture()

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	return p, nil
}

// setupQuad creates a full-screen quad. Texture row 0 is the bottom of the image.
func (p *GLPresenter) setupQuad() {
	vertices := []float32{
		// Positions   // Texture coords
		-1.0, -1.0, 0.0, 0.0, 0.0,
		1.0, -1.0, 0.0, 1.0, 0.0,
		1.0, 1.0, 0.0, 1.0, 1.0,
		-1.0, 1.0, 0.0, 0.0, 1.0,
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}

	gl.GenVertexArrays(1, &p.quadVAO)
	gl.BindVertexArray(p.quadVAO)

	gl.GenBuffers(1, &p.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &p.quadEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.quadEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	// Texture coord attribute
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

func (p *GLPresenter) setupTexture() {
	gl.GenTextures(1, &p.frameTexture)
	gl.BindTexture(gl.TEXTURE_2D, p.frameTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	// RGB rows are not 4-byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
}

// Present uploads fb and draws it over the whole viewport
func (p *GLPresenter) Present(fb *tracer.Framebuffer, viewportWidth, viewportHeight int) {
	gl.Viewport(0, 0, int32(viewportWidth), int32(viewportHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if fb == nil || fb.Width == 0 || fb.Height == 0 {
		return
	}

	pixels := fb.RGB8()

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.frameTexture)
	if fb.Width != p.texWidth || fb.Height != p.texHeight {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(fb.Width), int32(fb.Height), 0,
			gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
		p.texWidth = fb.Width
		p.texHeight = fb.Height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(fb.Width), int32(fb.Height),
			gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	}

	gl.UseProgram(p.program)
	gl.BindVertexArray(p.quadVAO)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Close releases all OpenGL resources
func (p *GLPresenter) Close() {
	gl.DeleteVertexArrays(1, &p.quadVAO)
	gl.DeleteBuffers(1, &p.quadVBO)
	gl.DeleteBuffers(1, &p.quadEBO)
	gl.DeleteTextures(1, &p.frameTexture)
	gl.DeleteProgram(p.program)
}

// createShaderProgram compiles and links a shader program from source
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Shaders are owned by the program once linked
	defer gl.DeleteShader(vertexShader)
	defer gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("shader program linking failed: %v", log)
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	return program, nil
}

// compileShader compiles a shader from source
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("shader compilation failed: %v", log)
	}

	return shader, nil
}
