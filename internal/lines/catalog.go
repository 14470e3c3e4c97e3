package lines

// Catalog of bundled lines, keyed by database then molecule. Line positions
// sit in the strong fundamental bands of each molecule; hitemp additionally
// carries hot-band lines with high lower-state energies that only matter at
// elevated temperatures.
var catalog = map[string]map[string][]Line{
	Hitran: {
		"CO2": co2Lines,
		"H2O": h2oLines,
		"CH4": ch4Lines,
		"CO":  coLines,
		"O3":  o3Lines,
		"N2O": n2oLines,
	},
	Hitemp: {
		"CO2": append(append([]Line{}, co2Lines...), co2HotLines...),
		"H2O": append(append([]Line{}, h2oLines...), h2oHotLines...),
		"CO":  append(append([]Line{}, coLines...), coHotLines...),
	},
}

// CO2 ν3 band near 2349 cm⁻¹ (4.26 µm).
var co2Lines = []Line{
	{Center: 2324.14, Intensity: 8.9e-19, AirWidth: 0.073, TempExp: 0.76, LowerEnergy: 316.77, Isotope: 1},
	{Center: 2327.43, Intensity: 1.3e-18, AirWidth: 0.072, TempExp: 0.76, LowerEnergy: 234.08, Isotope: 1},
	{Center: 2330.66, Intensity: 1.8e-18, AirWidth: 0.072, TempExp: 0.75, LowerEnergy: 162.95, Isotope: 1},
	{Center: 2333.83, Intensity: 2.3e-18, AirWidth: 0.071, TempExp: 0.75, LowerEnergy: 103.37, Isotope: 1},
	{Center: 2336.93, Intensity: 2.8e-18, AirWidth: 0.071, TempExp: 0.75, LowerEnergy: 55.35, Isotope: 1},
	{Center: 2339.97, Intensity: 3.1e-18, AirWidth: 0.070, TempExp: 0.75, LowerEnergy: 18.91, Isotope: 1},
	{Center: 2349.14, Intensity: 3.5e-18, AirWidth: 0.070, TempExp: 0.75, LowerEnergy: 0.00, Isotope: 1},
	{Center: 2352.08, Intensity: 3.0e-18, AirWidth: 0.070, TempExp: 0.75, LowerEnergy: 18.91, Isotope: 1},
	{Center: 2354.99, Intensity: 2.6e-18, AirWidth: 0.071, TempExp: 0.75, LowerEnergy: 55.35, Isotope: 1},
	{Center: 2357.87, Intensity: 2.1e-18, AirWidth: 0.071, TempExp: 0.75, LowerEnergy: 103.37, Isotope: 1},
	{Center: 2360.72, Intensity: 1.6e-18, AirWidth: 0.072, TempExp: 0.76, LowerEnergy: 162.95, Isotope: 1},
	{Center: 2363.54, Intensity: 1.1e-18, AirWidth: 0.072, TempExp: 0.76, LowerEnergy: 234.08, Isotope: 1},
	{Center: 2283.49, Intensity: 3.9e-20, AirWidth: 0.072, TempExp: 0.75, LowerEnergy: 0.00, Isotope: 2},
	{Center: 2286.32, Intensity: 3.4e-20, AirWidth: 0.072, TempExp: 0.75, LowerEnergy: 18.81, Isotope: 2},
}

var co2HotLines = []Line{
	{Center: 2327.87, Intensity: 4.2e-20, AirWidth: 0.071, TempExp: 0.75, LowerEnergy: 667.38, Isotope: 1},
	{Center: 2335.61, Intensity: 5.1e-20, AirWidth: 0.071, TempExp: 0.75, LowerEnergy: 686.29, Isotope: 1},
	{Center: 2341.33, Intensity: 3.8e-20, AirWidth: 0.070, TempExp: 0.75, LowerEnergy: 722.70, Isotope: 1},
	{Center: 2346.91, Intensity: 1.9e-20, AirWidth: 0.070, TempExp: 0.74, LowerEnergy: 1388.18, Isotope: 1},
}

// H2O ν3 band near 3756 cm⁻¹ (2.66 µm).
var h2oLines = []Line{
	{Center: 3682.57, Intensity: 5.2e-20, AirWidth: 0.094, TempExp: 0.68, LowerEnergy: 136.16, Isotope: 1},
	{Center: 3711.10, Intensity: 8.4e-20, AirWidth: 0.092, TempExp: 0.68, LowerEnergy: 79.50, Isotope: 1},
	{Center: 3732.13, Intensity: 1.1e-19, AirWidth: 0.090, TempExp: 0.68, LowerEnergy: 42.37, Isotope: 1},
	{Center: 3744.48, Intensity: 1.4e-19, AirWidth: 0.089, TempExp: 0.68, LowerEnergy: 23.79, Isotope: 1},
	{Center: 3755.93, Intensity: 1.7e-19, AirWidth: 0.088, TempExp: 0.68, LowerEnergy: 0.00, Isotope: 1},
	{Center: 3767.05, Intensity: 1.3e-19, AirWidth: 0.089, TempExp: 0.68, LowerEnergy: 23.79, Isotope: 1},
	{Center: 3779.49, Intensity: 9.6e-20, AirWidth: 0.091, TempExp: 0.68, LowerEnergy: 42.37, Isotope: 1},
	{Center: 3801.42, Intensity: 6.1e-20, AirWidth: 0.093, TempExp: 0.68, LowerEnergy: 95.18, Isotope: 1},
	{Center: 3748.32, Intensity: 1.9e-22, AirWidth: 0.088, TempExp: 0.68, LowerEnergy: 0.00, Isotope: 2},
}

var h2oHotLines = []Line{
	{Center: 3719.84, Intensity: 2.7e-21, AirWidth: 0.090, TempExp: 0.67, LowerEnergy: 1594.75, Isotope: 1},
	{Center: 3761.46, Intensity: 2.1e-21, AirWidth: 0.089, TempExp: 0.67, LowerEnergy: 1594.75, Isotope: 1},
}

// CH4 ν3 band near 3019 cm⁻¹ (3.31 µm).
var ch4Lines = []Line{
	{Center: 2958.58, Intensity: 5.9e-20, AirWidth: 0.062, TempExp: 0.73, LowerEnergy: 104.77, Isotope: 1},
	{Center: 2978.85, Intensity: 8.2e-20, AirWidth: 0.061, TempExp: 0.73, LowerEnergy: 62.88, Isotope: 1},
	{Center: 2999.06, Intensity: 1.0e-19, AirWidth: 0.060, TempExp: 0.73, LowerEnergy: 31.44, Isotope: 1},
	{Center: 3018.92, Intensity: 1.2e-19, AirWidth: 0.059, TempExp: 0.73, LowerEnergy: 0.00, Isotope: 1},
	{Center: 3038.50, Intensity: 9.8e-20, AirWidth: 0.060, TempExp: 0.73, LowerEnergy: 31.44, Isotope: 1},
	{Center: 3057.81, Intensity: 7.4e-20, AirWidth: 0.061, TempExp: 0.73, LowerEnergy: 62.88, Isotope: 1},
	{Center: 3076.88, Intensity: 5.1e-20, AirWidth: 0.062, TempExp: 0.73, LowerEnergy: 104.77, Isotope: 1},
}

// CO fundamental near 2143 cm⁻¹ (4.67 µm), R and P branches.
var coLines = []Line{
	{Center: 2115.63, Intensity: 2.1e-19, AirWidth: 0.064, TempExp: 0.70, LowerEnergy: 57.67, Isotope: 1},
	{Center: 2119.68, Intensity: 2.7e-19, AirWidth: 0.063, TempExp: 0.70, LowerEnergy: 34.60, Isotope: 1},
	{Center: 2123.70, Intensity: 3.2e-19, AirWidth: 0.062, TempExp: 0.70, LowerEnergy: 17.30, Isotope: 1},
	{Center: 2127.68, Intensity: 3.5e-19, AirWidth: 0.061, TempExp: 0.69, LowerEnergy: 5.77, Isotope: 1},
	{Center: 2131.63, Intensity: 3.7e-19, AirWidth: 0.060, TempExp: 0.69, LowerEnergy: 0.00, Isotope: 1},
	{Center: 2147.08, Intensity: 3.8e-19, AirWidth: 0.060, TempExp: 0.69, LowerEnergy: 0.00, Isotope: 1},
	{Center: 2150.86, Intensity: 3.6e-19, AirWidth: 0.061, TempExp: 0.69, LowerEnergy: 5.77, Isotope: 1},
	{Center: 2154.60, Intensity: 3.3e-19, AirWidth: 0.062, TempExp: 0.70, LowerEnergy: 17.30, Isotope: 1},
	{Center: 2158.30, Intensity: 2.9e-19, AirWidth: 0.063, TempExp: 0.70, LowerEnergy: 34.60, Isotope: 1},
	{Center: 2161.97, Intensity: 2.4e-19, AirWidth: 0.064, TempExp: 0.70, LowerEnergy: 57.67, Isotope: 1},
	{Center: 2096.07, Intensity: 3.9e-21, AirWidth: 0.061, TempExp: 0.69, LowerEnergy: 0.00, Isotope: 2},
}

var coHotLines = []Line{
	{Center: 2116.89, Intensity: 4.4e-21, AirWidth: 0.061, TempExp: 0.69, LowerEnergy: 2143.27, Isotope: 1},
	{Center: 2139.43, Intensity: 4.9e-21, AirWidth: 0.060, TempExp: 0.69, LowerEnergy: 2143.27, Isotope: 1},
}

// O3 ν3 band near 1042 cm⁻¹ (9.6 µm).
var o3Lines = []Line{
	{Center: 1025.60, Intensity: 2.4e-20, AirWidth: 0.075, TempExp: 0.72, LowerEnergy: 81.40, Isotope: 1},
	{Center: 1033.18, Intensity: 3.1e-20, AirWidth: 0.074, TempExp: 0.72, LowerEnergy: 44.85, Isotope: 1},
	{Center: 1042.08, Intensity: 3.6e-20, AirWidth: 0.073, TempExp: 0.72, LowerEnergy: 0.00, Isotope: 1},
	{Center: 1050.77, Intensity: 3.0e-20, AirWidth: 0.074, TempExp: 0.72, LowerEnergy: 44.85, Isotope: 1},
	{Center: 1058.93, Intensity: 2.3e-20, AirWidth: 0.075, TempExp: 0.72, LowerEnergy: 81.40, Isotope: 1},
}

// N2O ν3 band near 2224 cm⁻¹ (4.50 µm).
var n2oLines = []Line{
	{Center: 2201.76, Intensity: 6.8e-19, AirWidth: 0.070, TempExp: 0.74, LowerEnergy: 75.44, Isotope: 1},
	{Center: 2209.52, Intensity: 8.7e-19, AirWidth: 0.069, TempExp: 0.74, LowerEnergy: 37.72, Isotope: 1},
	{Center: 2217.12, Intensity: 1.0e-18, AirWidth: 0.068, TempExp: 0.74, LowerEnergy: 12.57, Isotope: 1},
	{Center: 2223.76, Intensity: 1.1e-18, AirWidth: 0.068, TempExp: 0.74, LowerEnergy: 0.00, Isotope: 1},
	{Center: 2230.27, Intensity: 1.0e-18, AirWidth: 0.068, TempExp: 0.74, LowerEnergy: 12.57, Isotope: 1},
	{Center: 2237.66, Intensity: 8.2e-19, AirWidth: 0.069, TempExp: 0.74, LowerEnergy: 37.72, Isotope: 1},
	{Center: 2244.89, Intensity: 6.3e-19, AirWidth: 0.070, TempExp: 0.74, LowerEnergy: 75.44, Isotope: 1},
}
