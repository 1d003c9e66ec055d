package dice

// Die holds a face value and a frozen flag. A fresh die shows 0 until
// its first roll.
type Die struct {
	value  int
	frozen bool
}

func NewDie() *Die {
	return &Die{}
}

// Roll draws a new face unless the die is frozen.
func (d *Die) Roll(src Source) {
	if d.frozen {
		return
	}
	d.value = src.Intn(Faces) + 1
}

func (d *Die) ToggleFreeze() {
	d.frozen = !d.frozen
}

func (d *Die) Reset() {
	d.value = 0
	d.frozen = false
}

func (d *Die) Value() int {
	return d.value
}

func (d *Die) Frozen() bool {
	return d.frozen
}

func (d *Die) View() View {
	return View{Value: d.value, Frozen: d.frozen}
}

type View struct {
	Value  int
	Frozen bool
}
