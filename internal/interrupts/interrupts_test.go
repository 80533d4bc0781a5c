package interrupts

import (
	"testing"

	"github.com/thelolagemann/sm83/internal/types"
)

func TestService_Vector(t *testing.T) {
	s := NewService()
	if s.Vector() != 0 {
		t.Errorf("expected no vector with nothing requested")
	}

	s.Request(TimerFlag | JoypadFlag | VBlankFlag)
	if s.HasInterrupts() {
		t.Errorf("expected requested but disabled interrupts to be ignored")
	}

	s.Enable = TimerFlag | JoypadFlag
	if !s.HasInterrupts() {
		t.Fatalf("expected pending interrupts")
	}

	// lowest bit first
	if v := s.Vector(); v != 0x0050 {
		t.Errorf("expected timer vector 0x0050, got 0x%04X", v)
	}
	if v := s.Vector(); v != 0x0060 {
		t.Errorf("expected joypad vector 0x0060, got 0x%04X", v)
	}
	if s.HasInterrupts() {
		t.Errorf("expected no pending interrupts")
	}
	if s.Flag != VBlankFlag {
		t.Errorf("expected VBlank to stay requested, got %05b", s.Flag)
	}
}

func TestService_ReadWrite(t *testing.T) {
	s := NewService()
	s.Write(types.IF, 0xFF)
	if s.Flag != 0x1F {
		t.Errorf("expected IF to hold 5 bits, got 0x%02X", s.Flag)
	}
	s.Write(types.IF, 0x04)
	if got := s.Read(types.IF); got != 0xE4 {
		t.Errorf("expected IF to read 0xE4, got 0x%02X", got)
	}
	s.Write(types.IE, 0x1F)
	if got := s.Read(types.IE); got != 0x1F {
		t.Errorf("expected IE to read 0x1F, got 0x%02X", got)
	}
}

func TestService_State(t *testing.T) {
	s := NewService()
	s.Flag, s.Enable = SerialFlag, 0x1F

	st := types.NewState()
	s.Save(st)

	restored := NewService()
	restored.Load(types.StateFromBytes(st.Bytes()))
	if restored.Flag != s.Flag || restored.Enable != s.Enable {
		t.Errorf("expected %02X/%02X, got %02X/%02X", s.Flag, s.Enable, restored.Flag, restored.Enable)
	}
}
