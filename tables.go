package vntone

// toneData holds the decomposition tables. There are three disjoint sets of
// decompositions, each packing base letter and tone mark into one integer
// differently, depending on the size of the key space.
type toneData struct {
	windows1258Key   [16]uint8
	windows1258Value [16]uint8
	middleKey        [14]uint8
	middleValue      [14]uint8
	extension        [90]uint16
}

// Code point ranges covered by the three sets.
const (
	extensionFirst   = 0x1EA0
	middleFirst      = 0xC3
	middleLast       = 0x169
	windows1258First = 0xC0
	windows1258Last  = 0xFA
	toneOffset       = 0x0300
)

var tones = toneData{
	// Letters with a precomposed form in windows-1258. They are decomposed
	// in orthographic mode only. Keys are code points truncated to one byte.
	windows1258Key: [16]uint8{
		0xC0, 0xC1, // À Á
		0xC8, 0xC9, // È É
		0xCD,       // Í
		0xD3,       // Ó
		0xD9, 0xDA, // Ù Ú
		0xE0, 0xE1, // à á
		0xE8, 0xE9, // è é
		0xED,       // í
		0xF3,       // ó
		0xF9, 0xFA, // ù ú
	},
	// Lower 7 bits: base letter. Upper bit: tone mark minus 0x0300, i.e.
	// 0 is grave and 1 is acute.
	//
	//	0xC1 = 0b_1100_0001  =>  0x41 'A' + 0x0301
	windows1258Value: [16]uint8{
		0x41, 0xC1, // À Á
		0x45, 0xC5, // È É
		0xC9,       // Í
		0xCF,       // Ó
		0x55, 0xD5, // Ù Ú
		0x61, 0xE1, // à á
		0x65, 0xE5, // è é
		0xE9,       // í
		0xEF,       // ó
		0x75, 0xF5, // ù ú
	},
	// Assorted letters outside 0x1EA0-0x1EF9 without a windows-1258 form.
	// Keys are code points minus 0xC3.
	middleKey: [14]uint8{
		0x00, // Ã
		0x09, // Ì
		0x0F, // Ò
		0x12, // Õ
		0x1A, // Ý
		0x20, // ã
		0x29, // ì
		0x2F, // ò
		0x32, // õ
		0x3A, // ý
		0x65, // Ĩ
		0x66, // ĩ
		0xA5, // Ũ
		0xA6, // ũ
	},
	// Lower 7 bits: base letter. The tone mark is
	//   - 0x0301 if the base is 'Y' or 'y' (upper bit ignored),
	//   - 0x0300 if the upper bit is 0,
	//   - 0x0303 if the upper bit is 1.
	//
	//	0xC1 = 0b_1100_0001  =>  0x41 'A' + 0x0303
	middleValue: [14]uint8{
		0xC1, // Ã
		0x49, // Ì
		0x4F, // Ò
		0xCF, // Õ
		0x59, // Ý
		0xE1, // ã
		0x69, // ì
		0x6F, // ò
		0xEF, // õ
		0x79, // ý
		0xC9, // Ĩ
		0xE9, // ĩ
		0xD5, // Ũ
		0xF5, // ũ
	},
	// Latin Extended Additional, Vietnamese part, indexed by code point minus
	// 0x1EA0. Lower 10 bits: base letter. Upper 6 bits: tone mark minus 0x0300.
	//
	//	0x8C41 = 0b_1000_11|00_0100_0001  =>  0x41 'A' + 0x0323
	extension: [90]uint16{
		0x8C41, 0x8C61, // Ạ ạ
		0x2441, 0x2461, // Ả ả
		0x04C2, 0x04E2, // Ấ ấ
		0x00C2, 0x00E2, // Ầ ầ
		0x24C2, 0x24E2, // Ẩ ẩ
		0x0CC2, 0x0CE2, // Ẫ ẫ
		0x8CC2, 0x8CE2, // Ậ ậ
		0x0502, 0x0503, // Ắ ắ
		0x0102, 0x0103, // Ằ ằ
		0x2502, 0x2503, // Ẳ ẳ
		0x0D02, 0x0D03, // Ẵ ẵ
		0x8D02, 0x8D03, // Ặ ặ
		0x8C45, 0x8C65, // Ẹ ẹ
		0x2445, 0x2465, // Ẻ ẻ
		0x0C45, 0x0C65, // Ẽ ẽ
		0x04CA, 0x04EA, // Ế ế
		0x00CA, 0x00EA, // Ề ề
		0x24CA, 0x24EA, // Ể ể
		0x0CCA, 0x0CEA, // Ễ ễ
		0x8CCA, 0x8CEA, // Ệ ệ
		0x2449, 0x2469, // Ỉ ỉ
		0x8C49, 0x8C69, // Ị ị
		0x8C4F, 0x8C6F, // Ọ ọ
		0x244F, 0x246F, // Ỏ ỏ
		0x04D4, 0x04F4, // Ố ố
		0x00D4, 0x00F4, // Ồ ồ
		0x24D4, 0x24F4, // Ổ ổ
		0x0CD4, 0x0CF4, // Ỗ ỗ
		0x8CD4, 0x8CF4, // Ộ ộ
		0x05A0, 0x05A1, // Ớ ớ
		0x01A0, 0x01A1, // Ờ ờ
		0x25A0, 0x25A1, // Ở ở
		0x0DA0, 0x0DA1, // Ỡ ỡ
		0x8DA0, 0x8DA1, // Ợ ợ
		0x8C55, 0x8C75, // Ụ ụ
		0x2455, 0x2475, // Ủ ủ
		0x05AF, 0x05B0, // Ứ ứ
		0x01AF, 0x01B0, // Ừ ừ
		0x25AF, 0x25B0, // Ử ử
		0x0DAF, 0x0DB0, // Ữ ữ
		0x8DAF, 0x8DB0, // Ự ự
		0x0059, 0x0079, // Ỳ ỳ
		0x8C59, 0x8C79, // Ỵ ỵ
		0x2459, 0x2479, // Ỷ ỷ
		0x0C59, 0x0C79, // Ỹ ỹ
	},
}
