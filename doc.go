/*
 * doc.go, part of goTermod.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package chem is the main package of the goTermod library. It calculates thermodynamic
and kinetic properties of substances, reactions and multi-substance systems from
tabulated heat capacity data, over one or more temperatures.



	**goTermod Capabilities**


    Parses chemical formulas with nested groups, such as Ca3(PO4)2 or [Co(NH3)6]Cl3,
	into element counts (package formula).

    Calculates the enthalpy, entropy, Gibbs and Helmholtz energies, heat capacity,
	chemical potential and atomization energy of a substance, from
	Maier-Kelley coefficients over temperature intervals, including the
	phase transitions.

    Balances reactions by solving the element balance with gonum, and calculates
	their thermodynamic functions, equilibrium constants and onset temperature.

    Arrhenius rate constants, with fits from two or more measurements, mass action
	rate laws in HTML or TeX, and rates as a function of the reaction extent.

    Mixtures of substances and an inert component, with their mole fractions,
	thermodynamic functions and strength coefficient.

    Temperature and pressure parameters, with unit conversions (package param).

    Periodic table data, and molar masses and volumes (package periodic).

    A small in-memory table store, with YAML, TOML and JSON files, optionally
	zstd-compressed, where the thermodynamic data is kept (package table).

    Plots of the thermodynamic functions and rates (package termoplot).

All the models share the conditions (temperature and pressure) they are
given, so changing them changes every model that uses them. Results are
arrays with one value per temperature, in kJ (kJ/K for entropies), rounded
to the digits given in the Config.

*/
package chem
