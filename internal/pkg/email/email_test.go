package email

import "testing"

func TestChunkRecipients(t *testing.T) {
	make50 := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "user@example.com"
		}
		return out
	}

	tests := []struct {
		name      string
		count     int
		size      int
		wantSizes []int
	}{
		{"empty list", 0, 50, nil},
		{"single partial batch", 12, 50, []int{12}},
		{"exact batch", 50, 50, []int{50}},
		{"one over", 51, 50, []int{50, 1}},
		{"several batches", 125, 50, []int{50, 50, 25}},
		{"zero size yields nothing", 10, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches := ChunkRecipients(make50(tt.count), tt.size)
			if len(batches) != len(tt.wantSizes) {
				t.Fatalf("got %d batches, want %d", len(batches), len(tt.wantSizes))
			}
			for i, want := range tt.wantSizes {
				if len(batches[i]) != want {
					t.Errorf("batch %d: got %d recipients, want %d", i, len(batches[i]), want)
				}
			}
		})
	}
}
