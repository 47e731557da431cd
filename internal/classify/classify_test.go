package classify

import "testing"

func TestASCIITable(t *testing.T) {
	tests := []struct {
		name      string
		b         byte
		wantPrint bool
		wantSpace bool
	}{
		{"space is printable whitespace", ' ', true, true},
		{"letter", 'a', true, false},
		{"tilde is the last printable", '~', true, false},
		{"tab", '\t', false, true},
		{"newline", '\n', false, true},
		{"vertical tab", '\v', false, true},
		{"form feed", '\f', false, true},
		{"carriage return", '\r', false, true},
		{"NUL control byte", 0x00, false, false},
		{"unit separator control byte", 0x1F, false, false},
		{"DEL", 0x7F, false, false},
		{"high byte", 0x80, false, false},
		{"high byte 0xFF", 0xFF, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ASCII.IsPrint(tt.b); got != tt.wantPrint {
				t.Errorf("ASCII.IsPrint(%#x) = %v, want %v", tt.b, got, tt.wantPrint)
			}
			if got := ASCII.IsSpace(tt.b); got != tt.wantSpace {
				t.Errorf("ASCII.IsSpace(%#x) = %v, want %v", tt.b, got, tt.wantSpace)
			}
		})
	}
}

func TestLatin1Table(t *testing.T) {
	// The ASCII range is unchanged.
	if !Latin1.IsPrint('a') || Latin1.IsPrint(0x7F) {
		t.Error("Latin1 must agree with ASCII below 0x80")
	}

	if !Latin1.IsPrint(0xE9) { // é
		t.Error("Latin1.IsPrint(0xE9) = false, want true")
	}
	if !Latin1.IsSpace(0x85) { // NEL
		t.Error("Latin1.IsSpace(0x85) = false, want true")
	}
	if !Latin1.IsSpace(0xA0) { // NBSP
		t.Error("Latin1.IsSpace(0xA0) = false, want true")
	}
	if Latin1.IsPrint(0x9F) { // C1 control
		t.Error("Latin1.IsPrint(0x9F) = true, want false")
	}
}

func TestForLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   *Table
	}{
		{"", ASCII},
		{"C", ASCII},
		{"POSIX", ASCII},
		{"posix", ASCII},
		{"en_US.UTF-8", ASCII},
		{"C.UTF-8", ASCII},
		{"de_DE.ISO-8859-1", Latin1},
		{"fr_FR.iso88591", Latin1},
		{"en_US.Latin-1", Latin1},
		{"ja_JP.eucJP", ASCII},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := ForLocale(tt.locale); got != tt.want {
				t.Errorf("ForLocale(%q) selected the wrong table", tt.locale)
			}
		})
	}
}
