// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CubeVertexShader is the vertex shader for the textured cube.
//
//go:embed cube.vert
var CubeVertexShader string

// CubeFragmentShader is the fragment shader for the textured cube.
//
//go:embed cube.frag
var CubeFragmentShader string

// WaterVertexShader displaces the water grid by the height texture.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader is the fragment shader for water rendering.
//
//go:embed water.frag
var WaterFragmentShader string
