package benchmark

// Every loop runs batches iterations of eight unrolled operations. Each of the
// eight takes its own operand, loaded from memory before the loop, so no two
// operations can be merged. Each operation also feeds a value the loop hands
// back, which is how the tests count them.
//
// Compiled code has no separate instruction for reading or writing a local, so
// the access benchmarks consume each value with one add, and the set benchmarks
// store a running count to a distinct address per operation.

// ReflIntMath times x += y on ints.
func (t *Tester) ReflIntMath() (Result, error) {
	d := t.data
	y0, y1, y2, y3 := d.ints[0], d.ints[1], d.ints[2], d.ints[3]
	y4, y5, y6, y7 := d.ints[4], d.ints[5], d.ints[6], d.ints[7]
	t.beginTimer()
	x := 0

	i := 0
	for ; i < t.batches; i++ {
		x += y0
		x += y1
		x += y2
		x += y3
		x += y4
		x += y5
		x += y6
		x += y7
	}

	res, err := t.EndTimer("reflIntMath", i*BatchSize)
	d.sink = x
	res.Value = float64(x)
	return res, err
}

// ReflFloatMath times x += y on floats.
func (t *Tester) ReflFloatMath() (Result, error) {
	d := t.data
	y0, y1, y2, y3 := d.floats[0], d.floats[1], d.floats[2], d.floats[3]
	y4, y5, y6, y7 := d.floats[4], d.floats[5], d.floats[6], d.floats[7]
	t.beginTimer()
	x := 0.0

	i := 0
	for ; i < t.batches; i++ {
		x += y0
		x += y1
		x += y2
		x += y3
		x += y4
		x += y5
		x += y6
		x += y7
	}

	res, err := t.EndTimer("reflFloatMath", i*BatchSize)
	res.Value = x
	return res, err
}

// IntMath times x = y + z on ints. The result of each addition is an operand
// of the next, alternating between x and y.
func (t *Tester) IntMath() (Result, error) {
	d := t.data
	z0, z1, z2, z3 := d.ints[0], d.ints[1], d.ints[2], d.ints[3]
	z4, z5, z6, z7 := d.ints[4], d.ints[5], d.ints[6], d.ints[7]
	t.beginTimer()
	x, y := 0, 0

	i := 0
	for ; i < t.batches; i++ {
		x = y + z0
		y = x + z1
		x = y + z2
		y = x + z3
		x = y + z4
		y = x + z5
		x = y + z6
		y = x + z7
	}

	res, err := t.EndTimer("intMath", i*BatchSize)
	d.sink = x
	res.Value = float64(y)
	return res, err
}

// FloatMath times x = y + z on floats, chained like IntMath.
func (t *Tester) FloatMath() (Result, error) {
	d := t.data
	z0, z1, z2, z3 := d.floats[0], d.floats[1], d.floats[2], d.floats[3]
	z4, z5, z6, z7 := d.floats[4], d.floats[5], d.floats[6], d.floats[7]
	t.beginTimer()
	x, y := 0.0, 0.0

	i := 0
	for ; i < t.batches; i++ {
		x = y + z0
		y = x + z1
		x = y + z2
		y = x + z3
		x = y + z4
		y = x + z5
		x = y + z6
		y = x + z7
	}

	res, err := t.EndTimer("floatMath", i*BatchSize)
	res.Value = y
	return res, err
}

// LocalAccesses times reads of local variables.
func (t *Tester) LocalAccesses() (Result, error) {
	d := t.data
	v0, v1, v2, v3 := d.ones[0], d.ones[1], d.ones[2], d.ones[3]
	v4, v5, v6, v7 := d.ones[4], d.ones[5], d.ones[6], d.ones[7]
	t.beginTimer()
	r := 0

	i := 0
	for ; i < t.batches; i++ {
		r += v0
		r += v1
		r += v2
		r += v3
		r += v4
		r += v5
		r += v6
		r += v7
	}

	res, err := t.EndTimer("localAccesses", i*BatchSize)
	d.sink = r
	res.Value = float64(r)
	return res, err
}

// LocalSets times writes to local variables held on the stack.
func (t *Tester) LocalSets() (Result, error) {
	d := t.data
	w0, w1, w2, w3 := d.ones[0], d.ones[1], d.ones[2], d.ones[3]
	w4, w5, w6, w7 := d.ones[4], d.ones[5], d.ones[6], d.ones[7]
	t.beginTimer()
	var v [BatchSize]int
	n := 0

	i := 0
	for ; i < t.batches; i++ {
		n += w0
		v[0] = n
		n += w1
		v[1] = n
		n += w2
		v[2] = n
		n += w3
		v[3] = n
		n += w4
		v[4] = n
		n += w5
		v[5] = n
		n += w6
		v[6] = n
		n += w7
		v[7] = n
	}

	res, err := t.EndTimer("localSets", i*BatchSize)
	d.sink = v[0] + v[1] + v[2] + v[3] + v[4] + v[5] + v[6]
	res.Value = float64(v[7])
	return res, err
}

// SlotAccesses times reads of a field of a heap object.
func (t *Tester) SlotAccesses() (Result, error) {
	d := t.data
	t.beginTimer()
	r := 0

	i := 0
	for ; i < t.batches; i++ {
		r += d.attrs[0]
		r += d.attrs[1]
		r += d.attrs[2]
		r += d.attrs[3]
		r += d.attrs[4]
		r += d.attrs[5]
		r += d.attrs[6]
		r += d.attrs[7]
	}

	res, err := t.EndTimer("slotAccesses", i*BatchSize)
	d.sink = r
	res.Value = float64(r)
	return res, err
}

// SlotSets times writes to fields of a heap object.
func (t *Tester) SlotSets() (Result, error) {
	d := t.data
	w0, w1, w2, w3 := d.ones[0], d.ones[1], d.ones[2], d.ones[3]
	w4, w5, w6, w7 := d.ones[4], d.ones[5], d.ones[6], d.ones[7]
	t.beginTimer()
	n := 0

	i := 0
	for ; i < t.batches; i++ {
		n += w0
		d.sets[0] = n
		n += w1
		d.sets[1] = n
		n += w2
		d.sets[2] = n
		n += w3
		d.sets[3] = n
		n += w4
		d.sets[4] = n
		n += w5
		d.sets[5] = n
		n += w6
		d.sets[6] = n
		n += w7
		d.sets[7] = n
	}

	res, err := t.EndTimer("slotSets", i*BatchSize)
	res.Value = float64(d.sets[7])
	return res, err
}

// BlockActivations times calls of a method that does nothing but return.
func (t *Tester) BlockActivations() (Result, error) {
	d := t.data
	t.beginTimer()
	r := 0

	i := 0
	for ; i < t.batches; i++ {
		r += t.foo()
		r += t.foo()
		r += t.foo()
		r += t.foo()
		r += t.foo()
		r += t.foo()
		r += t.foo()
		r += t.foo()
	}

	res, err := t.EndTimer("blockActivations", i*BatchSize)
	d.sink = r
	res.Value = float64(r)
	return res, err
}

// Instantiations times construction of new Testers. Each one is numbered and
// kept in its own slot until the next batch replaces it.
func (t *Tester) Instantiations() (Result, error) {
	d := t.data
	t.beginTimer()
	n := 0

	i := 0
	for ; i < t.batches; i++ {
		n++
		d.made[0] = &Tester{serial: n}
		n++
		d.made[1] = &Tester{serial: n}
		n++
		d.made[2] = &Tester{serial: n}
		n++
		d.made[3] = &Tester{serial: n}
		n++
		d.made[4] = &Tester{serial: n}
		n++
		d.made[5] = &Tester{serial: n}
		n++
		d.made[6] = &Tester{serial: n}
		n++
		d.made[7] = &Tester{serial: n}
	}

	res, err := t.EndTimer("instantiations", i*BatchSize)
	if last := d.made[BatchSize-1]; last != nil {
		res.Value = float64(last.serial)
	}
	return res, err
}
