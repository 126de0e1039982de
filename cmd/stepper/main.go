// stepper is a visual sample driver for the cpu package: it loads a raw
// binary image into memory, runs the CPU at a fixed instruction rate,
// and renders the zero page plus register file to an SDL2 window.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io/ioutil"
	"log"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/veandco/go-sdl2/sdl"

	"six502/cpu"
	"six502/memory"
)

var (
	rom           = flag.String("rom", "", "Path to a raw binary image to load at address 0")
	scale         = flag.Int("scale", 3, "Pixel scale factor for the zero-page grid")
	instrPerFrame = flag.Int("instructions_per_frame", 50, "Instructions to Step per rendered frame")
	frameRate     = flag.Duration("frame_rate", 33*time.Millisecond, "Delay between rendered frames")
)

const (
	gridDim  = 16 // zero page rendered as a 16x16 grid of bytes
	cellSize = 8
	sidebarW = 200
)

// fastImage adapts an sdl.Surface to draw.Image so the font package can
// blit glyphs directly into the window's backing pixels, poking the
// surface's raw bytes directly instead of converting through
// color.Color on every Set.
type fastImage struct {
	surface *sdl.Surface
	data    []byte
}

func (f *fastImage) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || int32(x) >= f.surface.W || int32(y) >= f.surface.H {
		return
	}
	r, g, b, a := c.RGBA()
	i := int32(y)*f.surface.Pitch + int32(x)*int32(f.surface.Format.BytesPerPixel)
	f.data[i+0] = uint8(b >> 8)
	f.data[i+1] = uint8(g >> 8)
	f.data[i+2] = uint8(r >> 8)
	f.data[i+3] = uint8(a >> 8)
}

func (f *fastImage) ColorModel() color.Model { return f.surface.ColorModel() }
func (f *fastImage) Bounds() image.Rectangle { return f.surface.Bounds() }
func (f *fastImage) At(x, y int) color.Color { return f.surface.At(x, y) }

func drawLine(img draw.Image, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawRegisters(img draw.Image, x, y int, c *cpu.CPU, mem *memory.RAM) {
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	lines := []string{
		fmt.Sprintf("PC: %04X", c.PC),
		fmt.Sprintf("A:  %02X", c.A),
		fmt.Sprintf("X:  %02X", c.X),
		fmt.Sprintf("Y:  %02X", c.Y),
		fmt.Sprintf("SP: %02X", c.SP),
		fmt.Sprintf("P:  %02X", c.P),
		fmt.Sprintf("op: %s", cpu.Mnemonic(mem.Read(c.PC))),
		fmt.Sprintf("TK: %d", c.Ticks),
	}
	for i, l := range lines {
		drawLine(img, x, y+i*16, l, white)
	}
}

func main() {
	flag.Parse()
	if *rom == "" {
		log.Fatal("-rom is required")
	}
	img, err := ioutil.ReadFile(*rom)
	if err != nil {
		log.Fatalf("can't read %q: %v", *rom, err)
	}

	mem := memory.New(img)
	c, err := cpu.New(mem)
	if err != nil {
		log.Fatalf("can't init cpu: %v", err)
	}

	w := int32(gridDim**scale*cellSize + sidebarW)
	h := int32(gridDim**scale*cellSize)

	sdl.Main(func() {
		if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
			log.Fatalf("can't init SDL: %v", err)
		}
		defer sdl.Quit()

		window, err := sdl.CreateWindow("six502 stepper", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
		if err != nil {
			log.Fatalf("can't create window: %v", err)
		}
		defer window.Destroy()

		surface, err := window.GetSurface()
		if err != nil {
			log.Fatalf("can't get surface: %v", err)
		}
		fi := &fastImage{surface: surface, data: surface.Pixels()}

		running := true
		for running {
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				if _, ok := event.(*sdl.QuitEvent); ok {
					running = false
				}
			}

			for i := 0; i < *instrPerFrame && running; i++ {
				c.Step()
			}

			surface.FillRect(nil, 0)
			raw := mem.Raw()
			for addr := 0; addr < gridDim*gridDim; addr++ {
				v := raw[addr]
				rect := sdl.Rect{
					X: int32((addr % gridDim) * cellSize * *scale),
					Y: int32((addr / gridDim) * cellSize * *scale),
					W: int32(cellSize * *scale),
					H: int32(cellSize * *scale),
				}
				surface.FillRect(&rect, surface.MapRGBA(v, v, v, 0xFF))
			}

			drawRegisters(fi, gridDim**scale*cellSize+8, 16, c, mem)
			window.UpdateSurface()
			sdl.Delay(uint32(frameRate.Milliseconds()))
		}
	})
}
