package tubebank

// DefaultInput is the reference pack: 180 cylindrical cells, 18.5 mm
// diameter, 4 across and 45 deep, aligned, 30 degC air at 2.5 m/s over 60 degC cells.
func DefaultInput() Input {
	return Input{
		Geometry: Geometry{
			CellDiameterMM:      18.5,
			TransversePitchMM:   20,
			LongitudinalPitchMM: 18.536,
			DiametricalPitchMM:  0,
			CellNumber:          180,
			NumberTransverse:    4,
			NumberLongitudinal:  45,
			CellLengthM:         0.32535,
			Arrangement:         Aligned,
		},
		Flow: FlowConditions{
			FreestreamTempC:    30,
			SurfaceTempC:       60,
			FreestreamVelocity: 2.5,
		},
	}
}
