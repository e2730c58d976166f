// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package cartridge

import (
	"bytes"
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// Sentinal error patterns
const (
	InvalidImage      = "cartridge: invalid image: %v"
	UnsupportedMapper = "cartridge: unsupported mapper: %v"
	StateMismatch     = "cartridge: state for %s cannot be restored to %s"
	WrongSize         = "cartridge: %s %s is the wrong size (%d bytes)"
)

// sizes of the sections of an iNES file
const (
	inesHeaderSize  = 16
	inesTrainerSize = 512
	PRGBankSize     = 16384
	CHRBankSize     = 8192
	PRGRAMBankSize  = 8192
)

var inesMagic = []byte{'N', 'E', 'S', 0x1a}

// Header is the decoded information in the header of an iNES file.
type Header struct {
	PRGBanks    int
	CHRBanks    int
	PRGRAMBanks int
	Mapper      uint8
	Mirroring   mapper.Mirroring
	Battery     bool
	Trainer     bool
	PAL         bool

	// the header has the NES 2.0 identifier. only the fields that are
	// common with version 1 of the format are used
	NES20 bool
}

func (h Header) String() string {
	s := fmt.Sprintf("mapper %d, PRG %dK, ", h.Mapper, h.PRGBanks*PRGBankSize/1024)
	if h.CHRBanks == 0 {
		s = fmt.Sprintf("%sCHR RAM 8K, ", s)
	} else {
		s = fmt.Sprintf("%sCHR %dK, ", s, h.CHRBanks*CHRBankSize/1024)
	}
	s = fmt.Sprintf("%s%s mirroring", s, h.Mirroring)
	if h.Battery {
		s = fmt.Sprintf("%s, battery", s)
	}
	if h.Trainer {
		s = fmt.Sprintf("%s, trainer", s)
	}
	if h.PAL {
		s = fmt.Sprintf("%s, PAL", s)
	}
	if h.NES20 {
		s = fmt.Sprintf("%s, NES 2.0", s)
	}
	return s
}

// Image is the result of decoding an iNES file
type Image struct {
	Header  Header
	Trainer []uint8
	PRG     []uint8
	CHR     []uint8
}

// DecodeINES decodes an iNES file. The returned image refers to fresh copies
// of the PRG and CHR data.
func DecodeINES(data []uint8) (Image, error) {
	var img Image

	if len(data) < inesHeaderSize {
		return img, curated.Errorf(InvalidImage, "too short for header")
	}

	if !bytes.Equal(data[:4], inesMagic) {
		return img, curated.Errorf(InvalidImage, "not an iNES file")
	}

	flags6 := data[6]
	flags7 := data[7]

	img.Header.PRGBanks = int(data[4])
	img.Header.CHRBanks = int(data[5])
	img.Header.Battery = flags6&0x02 == 0x02
	img.Header.Trainer = flags6&0x04 == 0x04
	img.Header.NES20 = flags7&0x0c == 0x08

	// "archaic" iNES files sometimes have garbage in the last bytes of the
	// header. in which case the upper nibble of the mapper can't be trusted
	archaic := !img.Header.NES20 && !bytes.Equal(data[12:16], []uint8{0, 0, 0, 0})
	if archaic {
		img.Header.Mapper = flags6 >> 4
	} else {
		img.Header.Mapper = (flags7 & 0xf0) | (flags6 >> 4)
		img.Header.PRGRAMBanks = int(data[8])
		img.Header.PAL = data[9]&0x01 == 0x01
	}

	// a value of zero means one bank for compatibility
	if img.Header.PRGRAMBanks == 0 {
		img.Header.PRGRAMBanks = 1
	}

	switch {
	case flags6&0x08 == 0x08:
		img.Header.Mirroring = mapper.MirrorFourScreen
	case flags6&0x01 == 0x01:
		img.Header.Mirroring = mapper.MirrorVertical
	default:
		img.Header.Mirroring = mapper.MirrorHorizontal
	}

	if img.Header.PRGBanks == 0 {
		return img, curated.Errorf(InvalidImage, "no PRG data")
	}

	idx := inesHeaderSize
	if img.Header.Trainer {
		if len(data) < idx+inesTrainerSize {
			return img, curated.Errorf(InvalidImage, "truncated trainer")
		}
		img.Trainer = append([]uint8(nil), data[idx:idx+inesTrainerSize]...)
		idx += inesTrainerSize
	}

	sz := img.Header.PRGBanks * PRGBankSize
	if len(data) < idx+sz {
		return img, curated.Errorf(InvalidImage, "truncated PRG data")
	}
	img.PRG = append([]uint8(nil), data[idx:idx+sz]...)
	idx += sz

	sz = img.Header.CHRBanks * CHRBankSize
	if len(data) < idx+sz {
		return img, curated.Errorf(InvalidImage, "truncated CHR data")
	}
	img.CHR = append([]uint8(nil), data[idx:idx+sz]...)

	return img, nil
}

// EncodeINES creates iNES data from an image. The header is recreated from
// the image fields. Only the version 1 fields are written.
func EncodeINES(img Image) []uint8 {
	h := img.Header

	data := make([]uint8, inesHeaderSize, inesHeaderSize+len(img.Trainer)+len(img.PRG)+len(img.CHR))
	copy(data, inesMagic)
	data[4] = uint8(len(img.PRG) / PRGBankSize)
	data[5] = uint8(len(img.CHR) / CHRBankSize)

	data[6] = h.Mapper << 4
	switch h.Mirroring {
	case mapper.MirrorVertical:
		data[6] |= 0x01
	case mapper.MirrorFourScreen:
		data[6] |= 0x08
	}
	if h.Battery {
		data[6] |= 0x02
	}
	if len(img.Trainer) > 0 {
		data[6] |= 0x04
	}
	data[7] = h.Mapper & 0xf0
	data[8] = uint8(h.PRGRAMBanks)
	if h.PAL {
		data[9] = 0x01
	}

	data = append(data, img.Trainer...)
	data = append(data, img.PRG...)
	data = append(data, img.CHR...)

	return data
}
