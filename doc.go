// Package hsize converts between raw byte counts and human-readable size
// strings across four unit systems: SI (kB, base 1000), IEC (KiB, base 1024),
// legacy JEDEC (KB, base 1024) and French octets (Mo, base 1000), with bit
// flavors, locale-aware number rendering and custom unit tables.
//
//	s, _ := hsize.Format(1536, hsize.FormatOptions{})          // "1.5 KiB"
//	n, _ := hsize.Parse("1.5 KiB", hsize.ParseOptions{})       // 1536
//	ms := hsize.Extract("copy 1 GiB and keep 512 MB free")     // two matches
//
// Formatting is system-driven: the caller picks one display convention.
// Parsing is ambiguity-driven: real-world text writes "KB" for both 1000 and
// 1024 bytes, so ambiguous units resolve from ParseOptions.PreferSI (binary
// by default) while unambiguous ones ("kB", "KiB") always mean what they say.
//
// All magnitude arithmetic runs through the decimal subpackage rather than
// float64, so scaling by large tiers does not drift.
package hsize
