// Command triangle opens a window and draws the depth-1 Sierpinski triangle:
// three sub-triangles in red, green and blue. It exercises the GL layer
// without the scene machinery.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"curvelab/internal/geom"
	"curvelab/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	windowWidth  = 800
	windowHeight = 800
)

const vertexSrc = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 color;
out vec3 vColor;
void main() {
	vColor = color;
	gl_Position = vec4(position, 1.0);
}`

const fragmentSrc = `#version 410 core
in vec3 vColor;
out vec4 fragColor;
void main() {
	fragColor = vec4(vColor, 1.0);
}`

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "Sierpinski depth 1", nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return err
	}

	shader, err := graphics.NewShaderFromSource(vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}
	defer shader.Delete()

	t := geom.SeedTriangle
	g, err := geom.Sierpinski(t[0], t[1], t[2], 1)
	if err != nil {
		return err
	}
	mesh := graphics.NewMesh(g)
	defer mesh.Dispose()

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	shader.Use()

	frames := 0
	last := time.Now()
	fpsTicker := time.NewTicker(time.Second)
	defer fpsTicker.Stop()

	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		mesh.Draw(geom.Triangles)

		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		select {
		case <-fpsTicker.C:
			now := time.Now()
			if elapsed := now.Sub(last).Seconds(); elapsed > 0 {
				fmt.Printf("FPS: %d\n", int(float64(frames)/elapsed+0.5))
			}
			frames = 0
			last = now
		default:
		}
	}
	return nil
}
