package gt911

const (
	// DefaultAddress is the I²C address latched when INT is low
	// while RST rises.
	DefaultAddress = 0x5d
	// AltAddress is the I²C address latched when INT is high
	// while RST rises.
	AltAddress = 0x14
)

// Register addresses. They are 16 bit and sent big endian.
const (
	regCommand     = 0x8040
	regConfig      = 0x8047 // Config_Version, start of the config block.
	regTouchNumber = 0x804c
	regChecksum    = 0x80ff
	regConfigFresh = 0x8100
	regProductID   = 0x8140
	regFirmware    = 0x8144
	regXResolution = 0x8146
	regYResolution = 0x8148
	regVendorID    = 0x814a
	regStatus      = 0x814e
	regPoint1      = 0x814f
)

const (
	// MaxTouches is the number of contacts the chip tracks.
	MaxTouches = 5
	// EntryLen is the stride between point entries in the
	// coordinate block. The last byte of each entry is reserved.
	EntryLen = 8

	pointLen   = 7
	regLen     = 2
	productLen = 4
	infoLen    = regVendorID - regProductID + 1
	configLen  = regChecksum - regConfig

	// productID is the expected content of the product id
	// registers.
	productID = "911\x00"
)

// Buffer sizes for the operations of Device. Each covers the register
// address and the largest payload the operation transfers.
const (
	GetTouchBufSize      = regLen + EntryLen
	GetMultiTouchBufSize = regLen + MaxTouches*EntryLen
	InfoBufSize          = regLen + infoLen
	// ConfigBufSize covers the config block plus its checksum and
	// fresh flag, written in one transfer.
	ConfigBufSize = regLen + configLen + 2
)

// Status register bits.
const (
	statusReady = 1 << 7
	statusLarge = 1 << 6
	statusCount = 0x0f
)
