package xlru

import "testing"

func FuzzStore(f *testing.F) {
	// 种子语料：(容量, 操作序列)，每两个字节为一个操作：op, key
	f.Add(uint8(1), []byte{0, 1, 0, 2, 1, 1, 1, 2})
	f.Add(uint8(4), []byte{0, 1, 0, 2, 0, 3, 0, 4, 1, 1, 0, 5, 1, 2})
	f.Add(uint8(3), []byte{0, 1, 2, 1, 0, 1, 3, 0, 0, 9})
	f.Add(uint8(0), []byte{})

	f.Fuzz(func(t *testing.T, capacity uint8, ops []byte) {
		s, err := NewStore[byte, int](int(capacity))
		if capacity == 0 {
			if err == nil {
				t.Fatal("expected ErrInvalidCapacity")
			}
			return
		}
		if err != nil {
			t.Fatalf("NewStore(%d): %v", capacity, err)
		}

		for i := 0; i+1 < len(ops); i += 2 {
			key := ops[i+1]
			switch ops[i] % 5 {
			case 0:
				s.Put(key, i)
				if r := s.Peek(key); !r.IsFound() || r.ValueOr(-1) != i {
					t.Fatalf("Peek(%d) after Put = %v", key, r)
				}
			case 1:
				s.Get(key)
			case 2:
				s.Remove(key)
			case 3:
				s.Purge()
			case 4:
				s.Keys()
			}
			if err := s.verify(); err != nil {
				t.Fatalf("op %d: %v", i/2, err)
			}
		}
	})
}
