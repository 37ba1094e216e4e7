package meph

//Physical constants, SI, CODATA 2018.
const (
	ElementaryCharge = 1.602176634e-19  //J per eV
	AtomicMass       = 1.66053906660e-27 //kg, unified atomic mass unit
	SpeedOfLight     = 299792458.0       //m/s
	Hbar             = 1.054571817e-34   //J·s
)

//MSDs are given in Å², the prefactor is in m⁻².
const angstrom2 = 1.0e-20

//Displacement files from the phonon code are sampled every this many K.
const defaultStep = 10.0
