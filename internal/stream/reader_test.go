package stream

import "testing"

func TestPrimitiveReads(t *testing.T) {
	r := New([]byte{0x2a, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 0x01, 0x00, 0x02})

	u8, err := r.U8()
	if err != nil || u8 != 0x2a {
		t.Fatalf("U8: got (%v, %v)", u8, err)
	}
	u16, err := r.U16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("U16: got (%v, %v)", u16, err)
	}
	u32, err := r.U32()
	if err != nil || u32 != 0x12345678 {
		t.Fatalf("U32: got (%v, %v)", u32, err)
	}
	b, err := r.Bool()
	if err != nil || b != true {
		t.Fatalf("Bool: got (%v, %v)", b, err)
	}
	b, err = r.Bool()
	if err != nil || b != false {
		t.Fatalf("Bool: got (%v, %v)", b, err)
	}

	if _, err := New([]byte{0x07}).Bool(); err == nil {
		t.Fatal("expected ParseError for invalid boolean byte")
	} else if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestVarCountAndString(t *testing.T) {
	// short string: one-byte length prefix
	r := New([]byte{0x03, 'f', 'o', 'o'})
	s, err := r.String()
	if err != nil || s != "foo" {
		t.Fatalf("String: got (%q, %v)", s, err)
	}

	// long string: 0xFF escape followed by a 4-byte length
	long := make([]byte, 0, 5+300)
	long = append(long, 0xFF, 0x2C, 0x01, 0x00, 0x00)
	for i := 0; i < 300; i++ {
		long = append(long, 'x')
	}
	r2 := New(long)
	s2, err := r2.String()
	if err != nil || len(s2) != 300 {
		t.Fatalf("String (long): got (len %d, %v)", len(s2), err)
	}
}

func TestExpectAndSeek(t *testing.T) {
	r := New([]byte{0x00, 0x01, 0x02})
	if err := r.Expect(0x00); err != nil {
		t.Fatalf("Expect: %v", err)
	}
	if err := r.Expect(0x00); err == nil {
		t.Fatal("expected literal mismatch error")
	}
	r.Seek(0)
	if err := r.Expect(0x00, 0x01); err != nil {
		t.Fatalf("Expect multi-byte: %v", err)
	}
	if r.Tell() != 2 {
		t.Fatalf("Tell: got %d, want 2", r.Tell())
	}
}

func TestNeedPastEOF(t *testing.T) {
	r := New([]byte{0x01})
	if _, err := r.U32(); err == nil {
		t.Fatal("expected error reading past end of buffer")
	}
}
