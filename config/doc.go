// Package config loads the pricer configuration and turns it into an engine run.
//
// Sources, lowest priority first:
//
//	defaults → TOML file → OPTIONFDM_* environment → command-line flags
//
// A .env file, when present, is loaded into the environment first; variables
// already set in the process win over it.
//
// The TOML file has one section per option kind plus output and logging:
//
//	type = "vanilla"
//
//	[vanilla]
//	scheme = "implicit"
//	strike = 100.0
//	...
//
//	[output]
//	results_path = "results"
//	format = "xlsx"
//
// Environment keys are the upper-cased dotted key with "." replaced by "_",
// e.g. OPTIONFDM_VANILLA_STRIKE. Flags such as --strike apply to the section
// selected by --type.
//
// Load only checks what the grid and market packages do not: names of
// schemes, formats, levels and sample counts. Numeric validation of the
// market, contract and grid happens in Build.
package config
