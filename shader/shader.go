// Package shader holds the WGSL display pass for the field texture and
// compiles it to SPIR-V.
//
// The ebiten window presents through ebiten's own pipeline, so the pass is
// only compiled and validated at startup and by -check-shader.
package shader

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed display.wgsl
var displayWGSL string

// Entry points of the display pass.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic = 0x07230203

// Source returns the WGSL source of the display pass.
func Source() string {
	return displayWGSL
}

// Compile compiles the display pass to SPIR-V words.
func Compile() ([]uint32, error) {
	return CompileWGSL(displayWGSL)
}

// CompileWGSL compiles WGSL source to SPIR-V words.
func CompileWGSL(src string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if len(words) == 0 || words[0] != SPIRVMagic {
		return nil, fmt.Errorf("shader: output is not a SPIR-V module")
	}
	return words, nil
}
