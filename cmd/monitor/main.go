// monitor is an interactive single-stepping TUI for the cpu package: it
// loads a raw binary image and lets the user advance one instruction at
// a time while watching registers, flags and a page of memory.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"six502/cpu"
	"six502/disassemble"
	"six502/memory"
)

var (
	rom    = flag.String("rom", "", "Path to a raw binary image to load at address 0")
	offset = flag.Int("page", int(cpu.ResetPC)&0xFFF0, "Start address (rounded down to 16) of the memory page shown")
)

type model struct {
	c      *cpu.CPU
	mem    *memory.RAM
	page   uint16
	prevPC uint16
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "n":
		m.prevPC = m.c.PC
		m.c.Step()
	case "r":
		m.c.Reset()
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.mem.Read(addr)
		if addr == m.c.PC {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01X  ", b)
	}
	lines := []string{header}
	for row := uint16(0); row < 8; row++ {
		lines = append(lines, m.renderPage(m.page+row*16))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	flagBits := []struct {
		name string
		set  bool
	}{
		{"N", m.c.P&cpu.FlagNegative != 0},
		{"V", m.c.P&cpu.FlagOverflow != 0},
		{"-", m.c.P&cpu.FlagUnused != 0},
		{"B", m.c.P&cpu.FlagBreak != 0},
		{"D", m.c.P&cpu.FlagDecimal != 0},
		{"I", m.c.P&cpu.FlagInterrupt != 0},
		{"Z", m.c.P&cpu.FlagZero != 0},
		{"C", m.c.P&cpu.FlagCarry != 0},
	}
	var header, flags string
	for _, f := range flagBits {
		header += f.name + " "
		if f.set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04X (was %04X)
 A: %02X
 X: %02X
 Y: %02X
SP: %02X
TK: %d
%s
%s`,
		m.c.PC, m.prevPC, m.c.A, m.c.X, m.c.Y, m.c.SP, m.c.Ticks, header, flags)
}

func (m model) View() string {
	text, _ := disassemble.Step(m.c.PC, m.mem)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		"next: "+text,
		"",
		"space/n: step  r: reset  q: quit",
	)
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

	if _, err := tea.NewProgram(model{c: c, mem: mem, page: uint16(*offset) &^ 0x0F}).Run(); err != nil {
		log.Fatal(err)
	}
}
