package huffcodec

// Symbol represents one byte of plain data.  Valid symbols are 0 through
// MaxSymbol; negative symbols are not valid.
type Symbol int16

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is in the range 0 .. MaxSymbol.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= MaxSymbol
}
