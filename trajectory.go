package meph

import "fmt"

// Trajectories holds the MSD components of each atom along the temperature samples.
// X[i][n] is the x component of atom i at the n-th temperature.
type Trajectories struct {
	X, Y, Z [][]float64
}

// NewTrajectories returns Trajectories for natom atoms, with no samples yet.
func NewTrajectories(natom int) *Trajectories {
	return &Trajectories{
		X: make([][]float64, 0, natom),
		Y: make([][]float64, 0, natom),
		Z: make([][]float64, 0, natom),
	}
}

// Len returns the number of atoms.
func (T *Trajectories) Len() int {
	if T == nil {
		return 0
	}
	return len(T.X)
}

// Atom returns the x, y and z series of atom i.
func (T *Trajectories) Atom(i int) (x, y, z []float64) {
	return T.X[i], T.Y[i], T.Z[i]
}

// Axis returns the series of every atom for axis 0 (x), 1 (y) or 2 (z).
func (T *Trajectories) Axis(a int) [][]float64 {
	switch a {
	case 0:
		return T.X
	case 1:
		return T.Y
	case 2:
		return T.Z
	}
	panic(fmt.Sprintf("Trajectories.Axis: axis %d out of range", a))
}

func (T *Trajectories) appendAtom(x, y, z []float64) {
	T.X = append(T.X, x)
	T.Y = append(T.Y, y)
	T.Z = append(T.Z, z)
}
