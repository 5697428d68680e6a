/*
 * elements.go, part of goTermod.
 *
 * Copyright 2021 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goTermod is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package periodic

import "github.com/rmera/gotermod/table"

//Built-in element data, from H to U. Densities are in g/cm3 at 20 C (gases
//at 0 C and 1 atm), melting and boiling points in C.
var elementData = []struct {
	num       int
	smb       string
	name      string
	latname   string
	period    int
	grp       int
	mass      float64
	ro        float64
	tpl, tkip float64
}{
	{1, "H", "Hydrogen", "Hydrogenium", 1, 1, 1.008, 0.0000899, -259.1, -252.9},
	{2, "He", "Helium", "Helium", 1, 18, 4.0026, 0.0001785, -272.2, -268.9},
	{3, "Li", "Lithium", "Lithium", 2, 1, 6.94, 0.534, 180.5, 1342},
	{4, "Be", "Beryllium", "Beryllium", 2, 2, 9.0122, 1.85, 1287, 2469},
	{5, "B", "Boron", "Borum", 2, 13, 10.81, 2.34, 2076, 3927},
	{6, "C", "Carbon", "Carboneum", 2, 14, 12.011, 2.267, 3550, 4827},
	{7, "N", "Nitrogen", "Nitrogenium", 2, 15, 14.007, 0.0012506, -210.0, -195.8},
	{8, "O", "Oxygen", "Oxygenium", 2, 16, 15.999, 0.001429, -218.8, -183.0},
	{9, "F", "Fluorine", "Fluorum", 2, 17, 18.998, 0.001696, -219.7, -188.1},
	{10, "Ne", "Neon", "Neon", 2, 18, 20.180, 0.0008999, -248.6, -246.1},
	{11, "Na", "Sodium", "Natrium", 3, 1, 22.990, 0.971, 97.8, 883},
	{12, "Mg", "Magnesium", "Magnesium", 3, 2, 24.305, 1.738, 650, 1090},
	{13, "Al", "Aluminium", "Aluminium", 3, 13, 26.982, 2.698, 660.3, 2519},
	{14, "Si", "Silicon", "Silicium", 3, 14, 28.085, 2.329, 1414, 3265},
	{15, "P", "Phosphorus", "Phosphorus", 3, 15, 30.974, 1.823, 44.2, 280.5},
	{16, "S", "Sulfur", "Sulfur", 3, 16, 32.06, 2.07, 115.2, 444.6},
	{17, "Cl", "Chlorine", "Chlorum", 3, 17, 35.45, 0.003214, -101.5, -34.0},
	{18, "Ar", "Argon", "Argon", 3, 18, 39.948, 0.0017837, -189.3, -185.8},
	{19, "K", "Potassium", "Kalium", 4, 1, 39.098, 0.862, 63.5, 759},
	{20, "Ca", "Calcium", "Calcium", 4, 2, 40.078, 1.55, 842, 1484},
	{21, "Sc", "Scandium", "Scandium", 4, 3, 44.956, 2.989, 1541, 2836},
	{22, "Ti", "Titanium", "Titanium", 4, 4, 47.867, 4.54, 1668, 3287},
	{23, "V", "Vanadium", "Vanadium", 4, 5, 50.942, 6.11, 1910, 3407},
	{24, "Cr", "Chromium", "Chromium", 4, 6, 51.996, 7.19, 1907, 2671},
	{25, "Mn", "Manganese", "Manganum", 4, 7, 54.938, 7.21, 1246, 2061},
	{26, "Fe", "Iron", "Ferrum", 4, 8, 55.845, 7.874, 1538, 2861},
	{27, "Co", "Cobalt", "Cobaltum", 4, 9, 58.933, 8.90, 1495, 2927},
	{28, "Ni", "Nickel", "Niccolum", 4, 10, 58.693, 8.908, 1455, 2913},
	{29, "Cu", "Copper", "Cuprum", 4, 11, 63.546, 8.96, 1084.6, 2562},
	{30, "Zn", "Zinc", "Zincum", 4, 12, 65.38, 7.14, 419.5, 907},
	{31, "Ga", "Gallium", "Gallium", 4, 13, 69.723, 5.91, 29.8, 2204},
	{32, "Ge", "Germanium", "Germanium", 4, 14, 72.630, 5.323, 938.3, 2833},
	{33, "As", "Arsenic", "Arsenicum", 4, 15, 74.922, 5.727, 817, 614},
	{34, "Se", "Selenium", "Selenium", 4, 16, 78.971, 4.81, 221, 685},
	{35, "Br", "Bromine", "Bromum", 4, 17, 79.904, 3.1028, -7.2, 58.8},
	{36, "Kr", "Krypton", "Krypton", 4, 18, 83.798, 0.003733, -157.4, -153.4},
	{37, "Rb", "Rubidium", "Rubidium", 5, 1, 85.468, 1.532, 39.3, 688},
	{38, "Sr", "Strontium", "Strontium", 5, 2, 87.62, 2.64, 777, 1382},
	{39, "Y", "Yttrium", "Yttrium", 5, 3, 88.906, 4.469, 1526, 3345},
	{40, "Zr", "Zirconium", "Zirconium", 5, 4, 91.224, 6.506, 1855, 4409},
	{41, "Nb", "Niobium", "Niobium", 5, 5, 92.906, 8.57, 2477, 4744},
	{42, "Mo", "Molybdenum", "Molybdaenum", 5, 6, 95.95, 10.28, 2623, 4639},
	{43, "Tc", "Technetium", "Technetium", 5, 7, 98, 11.5, 2157, 4265},
	{44, "Ru", "Ruthenium", "Ruthenium", 5, 8, 101.07, 12.37, 2334, 4150},
	{45, "Rh", "Rhodium", "Rhodium", 5, 9, 102.91, 12.41, 1964, 3695},
	{46, "Pd", "Palladium", "Palladium", 5, 10, 106.42, 12.02, 1554.9, 2963},
	{47, "Ag", "Silver", "Argentum", 5, 11, 107.87, 10.49, 961.8, 2162},
	{48, "Cd", "Cadmium", "Cadmium", 5, 12, 112.41, 8.65, 321.1, 767},
	{49, "In", "Indium", "Indium", 5, 13, 114.82, 7.31, 156.6, 2072},
	{50, "Sn", "Tin", "Stannum", 5, 14, 118.71, 7.287, 231.9, 2602},
	{51, "Sb", "Antimony", "Stibium", 5, 15, 121.76, 6.685, 630.6, 1587},
	{52, "Te", "Tellurium", "Tellurium", 5, 16, 127.60, 6.232, 449.5, 988},
	{53, "I", "Iodine", "Iodum", 5, 17, 126.90, 4.93, 113.7, 184.3},
	{54, "Xe", "Xenon", "Xenon", 5, 18, 131.29, 0.005887, -111.8, -108.1},
	{55, "Cs", "Caesium", "Caesium", 6, 1, 132.91, 1.873, 28.4, 671},
	{56, "Ba", "Barium", "Barium", 6, 2, 137.33, 3.594, 727, 1845},
	{57, "La", "Lanthanum", "Lanthanum", 6, 3, 138.91, 6.146, 920, 3464},
	{58, "Ce", "Cerium", "Cerium", 6, 3, 140.12, 6.689, 795, 3443},
	{59, "Pr", "Praseodymium", "Praseodymium", 6, 3, 140.91, 6.64, 935, 3520},
	{60, "Nd", "Neodymium", "Neodymium", 6, 3, 144.24, 7.01, 1024, 3074},
	{61, "Pm", "Promethium", "Promethium", 6, 3, 145, 7.264, 1042, 3000},
	{62, "Sm", "Samarium", "Samarium", 6, 3, 150.36, 7.353, 1072, 1794},
	{63, "Eu", "Europium", "Europium", 6, 3, 151.96, 5.244, 826, 1529},
	{64, "Gd", "Gadolinium", "Gadolinium", 6, 3, 157.25, 7.901, 1312, 3273},
	{65, "Tb", "Terbium", "Terbium", 6, 3, 158.93, 8.219, 1356, 3230},
	{66, "Dy", "Dysprosium", "Dysprosium", 6, 3, 162.50, 8.551, 1407, 2567},
	{67, "Ho", "Holmium", "Holmium", 6, 3, 164.93, 8.795, 1461, 2720},
	{68, "Er", "Erbium", "Erbium", 6, 3, 167.26, 9.066, 1529, 2868},
	{69, "Tm", "Thulium", "Thulium", 6, 3, 168.93, 9.321, 1545, 1950},
	{70, "Yb", "Ytterbium", "Ytterbium", 6, 3, 173.05, 6.570, 824, 1196},
	{71, "Lu", "Lutetium", "Lutetium", 6, 3, 174.97, 9.841, 1652, 3402},
	{72, "Hf", "Hafnium", "Hafnium", 6, 4, 178.49, 13.31, 2233, 4603},
	{73, "Ta", "Tantalum", "Tantalum", 6, 5, 180.95, 16.654, 3017, 5458},
	{74, "W", "Tungsten", "Wolframium", 6, 6, 183.84, 19.25, 3422, 5555},
	{75, "Re", "Rhenium", "Rhenium", 6, 7, 186.21, 21.02, 3186, 5596},
	{76, "Os", "Osmium", "Osmium", 6, 8, 190.23, 22.59, 3033, 5012},
	{77, "Ir", "Iridium", "Iridium", 6, 9, 192.22, 22.56, 2446, 4428},
	{78, "Pt", "Platinum", "Platinum", 6, 10, 195.08, 21.45, 1768.3, 3825},
	{79, "Au", "Gold", "Aurum", 6, 11, 196.97, 19.3, 1064.2, 2856},
	{80, "Hg", "Mercury", "Hydrargyrum", 6, 12, 200.59, 13.534, -38.8, 356.7},
	{81, "Tl", "Thallium", "Thallium", 6, 13, 204.38, 11.85, 304, 1473},
	{82, "Pb", "Lead", "Plumbum", 6, 14, 207.2, 11.34, 327.5, 1749},
	{83, "Bi", "Bismuth", "Bismuthum", 6, 15, 208.98, 9.807, 271.4, 1564},
	{84, "Po", "Polonium", "Polonium", 6, 16, 209, 9.32, 254, 962},
	{85, "At", "Astatine", "Astatium", 6, 17, 210, 7, 302, 337},
	{86, "Rn", "Radon", "Radon", 6, 18, 222, 0.00973, -71, -61.7},
	{87, "Fr", "Francium", "Francium", 7, 1, 223, 1.87, 27, 677},
	{88, "Ra", "Radium", "Radium", 7, 2, 226, 5.5, 700, 1737},
	{89, "Ac", "Actinium", "Actinium", 7, 3, 227, 10.07, 1050, 3200},
	{90, "Th", "Thorium", "Thorium", 7, 3, 232.04, 11.72, 1750, 4820},
	{91, "Pa", "Protactinium", "Protactinium", 7, 3, 231.04, 15.37, 1568, 4000},
	{92, "U", "Uranium", "Uranium", 7, 3, 238.03, 19.1, 1132.2, 4131},
}

//NewTable returns an in-memory element table filled with the built-in data.
func NewTable() *table.Memory {
	M := table.NewMemory(TableName, fields)
	for _, e := range elementData {
		//the data is static, so Insert can't fail.
		M.Insert(table.Row{
			"num":     e.num,
			"smb":     e.smb,
			"name":    e.name,
			"latname": e.latname,
			"period":  e.period,
			"grp":     e.grp,
			"mass":    e.mass,
			"ro":      e.ro,
			"tpl":     e.tpl,
			"tkip":    e.tkip,
		})
	}
	return M
}

//Default returns a Table over the built-in element data.
func Default() *Table {
	return New(NewTable())
}
