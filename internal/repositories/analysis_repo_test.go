package repositories

import "testing"

func TestDecodeDoc(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		wantNil bool
	}{
		{"object", `{"score": 4.5}`, false, false},
		{"array", `[1, 2, 3]`, false, false},
		{"null column", "", false, true},
		{"truncated", `{"score":`, true, true},
		{"garbage", `not json`, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst any
			err := decodeDoc([]byte(tt.raw), &dst)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeDoc(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if (dst == nil) != tt.wantNil {
				t.Errorf("decodeDoc(%q) dst = %v, want nil=%v", tt.raw, dst, tt.wantNil)
			}
		})
	}
}
