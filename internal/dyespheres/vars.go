package dyespheres

var (
	// Compile time checks that all record sources implement Source
	_ Source = (*JSONSource)(nil)
	_ Source = (*SQLiteSource)(nil)
)
