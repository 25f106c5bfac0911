package amount

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Amount
	}{
		{raw: "25", want: 2500},
		{raw: " 3.5 ", want: 350},
		{raw: "+1.25", want: 125},
		{raw: "0.005", want: 1},
		{raw: "2.994", want: 299},
		{raw: "007", want: 700},
		{raw: "99999999.99", want: Max},
		{raw: "100000000", want: Zero},
		{raw: "", want: Zero},
		{raw: "abc", want: Zero},
		{raw: "-5", want: Zero},
		{raw: "1e3", want: 100000},
		{raw: "2.5E-1", want: 25},
		{raw: "-1e3", want: Zero},
		{raw: "1e9", want: Zero},
		{raw: ".5", want: 50},
		{raw: "5.", want: 500},
		{raw: ".", want: Zero},
		{raw: "+", want: Zero},
		{raw: "NaN", want: Zero},
		{raw: "Inf", want: Zero},
		{raw: "1/3", want: Zero},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Parse(tt.raw); got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAmount_String(t *testing.T) {
	tests := []struct {
		in   Amount
		want string
	}{
		{in: 2500, want: "25.00"},
		{in: 5, want: "0.05"},
		{in: -125, want: "-1.25"},
		{in: Zero, want: "0.00"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Amount(%d).String() = %q, want %q", int64(tt.in), got, tt.want)
		}
	}
}

func TestAmount_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    Amount
		wantErr bool
	}{
		{name: "numeric bytes", src: []byte("12.50"), want: 1250},
		{name: "negative sum", src: "-3.00", want: -300},
		{name: "zero string", src: "0.00", want: Zero},
		{name: "int", src: int64(4), want: 400},
		{name: "float", src: 1.1, want: 110},
		{name: "null", src: nil, want: Zero},
		{name: "garbage", src: "x1", wantErr: true},
		{name: "unsupported", src: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Amount
			err := got.Scan(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Scan() = %v, want %v", got, tt.want)
			}
		})
	}
}
