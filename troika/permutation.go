package troika

func (t *Troika) permute() {
	rc := t.constants
	if rc == nil {
		rc = &defaultRoundConstants
	}
	for round := 0; round < NUM_ROUNDS; round++ {
		t.subTrytes()
		t.shiftRowsAndLanes()
		t.addColumnParity()
		t.addRoundConstant(&rc[round])
	}
}

func (t *Troika) subTrytes() {
	for i := 0; i < STATESIZE; i += 3 {
		out := SBOX[9*t.state[i]+3*t.state[i+1]+t.state[i+2]]
		t.state[i+2] = out % 3
		out /= 3
		t.state[i+1] = out % 3
		t.state[i] = out / 3
	}
}

func (t *Troika) shiftRowsAndLanes() {
	for i := range shiftIndex {
		t.scratch[shiftIndex[i]] = t.state[i]
	}
	t.state = t.scratch
}

func (t *Troika) addColumnParity() {
	var parity [SLICES * COLUMNS]uint8
	for slice := 0; slice < SLICES; slice++ {
		for col := 0; col < COLUMNS; col++ {
			idx := SLICESIZE*slice + col
			parity[COLUMNS*slice+col] = (t.state[idx] + t.state[idx+COLUMNS] + t.state[idx+2*COLUMNS]) % 3
		}
	}

	for slice := 0; slice < SLICES; slice++ {
		next := (slice + 1) % SLICES
		for col := 0; col < COLUMNS; col++ {
			sum := parity[COLUMNS*slice+(col+COLUMNS-1)%COLUMNS] + parity[COLUMNS*next+(col+1)%COLUMNS]
			for row := 0; row < ROWS; row++ {
				idx := SLICESIZE*slice + COLUMNS*row + col
				t.state[idx] = (t.state[idx] + sum) % 3
			}
		}
	}
}

func (t *Troika) addRoundConstant(constants *[COLUMNS * SLICES]uint8) {
	for slice := 0; slice < SLICES; slice++ {
		for col := 0; col < COLUMNS; col++ {
			idx := SLICESIZE*slice + col
			t.state[idx] = (t.state[idx] + constants[slice*COLUMNS+col]) % 3
		}
	}
}
