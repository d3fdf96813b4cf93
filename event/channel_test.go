package event

import "testing"

// TestChannelReadersIndependent verifies each reader sees every event exactly once
func TestChannelReadersIndependent(t *testing.T) {
	c := NewChannel[int](0)
	a := c.Register()
	b := c.Register()

	c.Write(1)
	c.Write(2)

	if got := c.Read(a); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Expected reader a to get [1 2], got %v", got)
	}
	if got := c.Read(a); got != nil {
		t.Errorf("Expected second read to be empty, got %v", got)
	}

	c.Write(3)
	if got := c.Read(b); len(got) != 3 {
		t.Errorf("Expected reader b to get 3 events, got %v", got)
	}
	if got := c.Read(a); len(got) != 1 || got[0] != 3 {
		t.Errorf("Expected reader a to get [3], got %v", got)
	}
}

// TestChannelRegisterAtEnd verifies late readers skip earlier events
func TestChannelRegisterAtEnd(t *testing.T) {
	c := NewChannel[string](0)
	c.Write("early")
	r := c.Register()
	c.Write("late")

	got := c.Read(r)
	if len(got) != 1 || got[0] != "late" {
		t.Errorf("Expected [late], got %v", got)
	}
}

// TestChannelRotate verifies rotation keeps events unread by a lagging reader
func TestChannelRotate(t *testing.T) {
	c := NewChannel[int](0)
	fast := c.Register()
	slow := c.Register()

	c.Write(1)
	c.Write(2)
	c.Read(fast)
	c.Rotate()

	if c.Len() != 2 {
		t.Errorf("Expected 2 retained events while slow reader lags, got %d", c.Len())
	}
	if c.Pending(slow) != 2 {
		t.Errorf("Expected slow reader pending 2, got %d", c.Pending(slow))
	}

	c.Read(slow)
	c.Rotate()
	if c.Len() != 0 {
		t.Errorf("Expected empty log after all readers consumed, got %d", c.Len())
	}

	c.Write(3)
	if got := c.Read(fast); len(got) != 1 || got[0] != 3 {
		t.Errorf("Expected [3] after rotation, got %v", got)
	}
}

// TestChannelRotateWithoutReaders verifies an unread log is discarded
func TestChannelRotateWithoutReaders(t *testing.T) {
	c := NewChannel[int](0)
	c.Write(1)
	c.Rotate()
	if c.Len() != 0 {
		t.Errorf("Expected empty log, got %d", c.Len())
	}
}

// TestChannelOverflow verifies oldest events drop and lagging cursors skip forward
func TestChannelOverflow(t *testing.T) {
	c := NewChannel[int](3)
	r := c.Register()
	for i := 1; i <= 5; i++ {
		c.Write(i)
	}

	if c.Dropped() != 2 {
		t.Errorf("Expected 2 dropped, got %d", c.Dropped())
	}
	got := c.Read(r)
	if len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Errorf("Expected [3 4 5], got %v", got)
	}
}

// TestChannelReadIsCopy verifies writes after Read do not alias the result
func TestChannelReadIsCopy(t *testing.T) {
	c := NewChannel[int](0)
	r := c.Register()
	c.Write(1)
	got := c.Read(r)
	c.Rotate()
	c.Write(9)
	if got[0] != 1 {
		t.Errorf("Expected read result to stay 1, got %d", got[0])
	}
}
