package edid

// Constants for the EDID block layout.
const (
	// VersionOffset is the position of the version byte in the block
	VersionOffset = 18

	// HeaderSize is the number of bytes read before the total length is known
	HeaderSize = 20

	// BaseLength is the total block length for EDID version 1
	BaseLength = 128

	// ExtendedLength is the total block length for EDID version 2
	ExtendedLength = 256
)

// blockLengths maps EDID version N to its total block length at index N-1.
var blockLengths = [...]int{BaseLength, ExtendedLength}

// ResolveLength determines the total block length from the version byte at
// VersionOffset. The header must contain at least VersionOffset+1 bytes.
//
// Returns UnknownVersionError for version 0 or any version beyond the
// known length table.
//
// Example:
//
//	length, err := edid.ResolveLength(header)
//	if err != nil {
//	    log.Fatal(err)
//	}
func ResolveLength(header []byte) (int, error) {
	if len(header) <= VersionOffset {
		return 0, &LengthMismatchError{Got: len(header), Want: VersionOffset + 1}
	}

	version := header[VersionOffset]
	if version == 0 || int(version) > len(blockLengths) {
		return 0, &UnknownVersionError{Version: version}
	}

	return blockLengths[version-1], nil
}

// Checksum computes the checksum for a block: the two's complement of the
// sum of all bytes except the trailing one. A block whose last byte equals
// this value sums to zero modulo 256.
func Checksum(block []byte) byte {
	var sum byte
	for _, b := range block[:len(block)-1] {
		sum += b
	}
	return ^sum + 1 // 2's complement
}

// Validate checks the trailing byte of the block against the computed
// checksum. Returns a ChecksumError carrying both values on mismatch.
func Validate(block []byte) error {
	stored := block[len(block)-1]
	computed := Checksum(block)

	if stored != computed {
		return &ChecksumError{Stored: stored, Computed: computed}
	}

	return nil
}

// Fix overwrites the trailing byte with the computed checksum if it does
// not already match. Returns the previous value, the computed value, and
// whether the block was modified. Fixing a valid block is a no-op.
func Fix(block []byte) (stored, computed byte, fixed bool) {
	stored = block[len(block)-1]
	computed = Checksum(block)

	if stored == computed {
		return stored, computed, false
	}

	block[len(block)-1] = computed
	return stored, computed, true
}
