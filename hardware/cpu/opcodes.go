// This file is part of GopherF8.
//
// GopherF8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherF8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherF8.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import "github.com/jetsetilly/gopherf8/hardware/cpu/registers"

// handler executes the instruction for an opcode, returning the number of
// ticks it took. the opcode is passed so that instruction families can decode
// the register or value encoded in the low bits.
type handler func(mc *CPU, opcode uint8) int

// dispatch table indexed by opcode
var opcodes [256]handler

func init() {
	for i := range opcodes {
		opcodes[i] = (*CPU).undefined
	}

	for i := 0x00; i <= 0x03; i++ {
		opcodes[i] = (*CPU).loadAccFromKQ
		opcodes[i+4] = (*CPU).storeAccToKQ
	}
	opcodes[0x08] = (*CPU).lrKP
	opcodes[0x09] = (*CPU).lrPK
	opcodes[0x0a] = (*CPU).lrAIS
	opcodes[0x0b] = (*CPU).lrISA
	opcodes[0x0c] = (*CPU).pk
	opcodes[0x0d] = (*CPU).lrP0Q
	opcodes[0x0e] = (*CPU).lrQDC
	opcodes[0x0f] = (*CPU).lrDCQ
	opcodes[0x10] = (*CPU).lrDCH
	opcodes[0x11] = (*CPU).lrHDC
	opcodes[0x12] = (*CPU).shift
	opcodes[0x13] = (*CPU).shift
	opcodes[0x14] = (*CPU).shift
	opcodes[0x15] = (*CPU).shift
	opcodes[0x16] = (*CPU).lm
	opcodes[0x17] = (*CPU).st
	opcodes[0x18] = (*CPU).com
	opcodes[0x19] = (*CPU).lnk
	opcodes[0x1a] = (*CPU).di
	opcodes[0x1b] = (*CPU).ei
	opcodes[0x1c] = (*CPU).pop
	opcodes[0x1d] = (*CPU).lrWJ
	opcodes[0x1e] = (*CPU).lrJW
	opcodes[0x1f] = (*CPU).inc
	opcodes[0x20] = (*CPU).li
	opcodes[0x21] = (*CPU).ni
	opcodes[0x22] = (*CPU).oi
	opcodes[0x23] = (*CPU).xi
	opcodes[0x24] = (*CPU).ai
	opcodes[0x25] = (*CPU).ci
	opcodes[0x26] = (*CPU).in
	opcodes[0x27] = (*CPU).out
	opcodes[0x28] = (*CPU).pi
	opcodes[0x29] = (*CPU).jmp
	opcodes[0x2a] = (*CPU).dci
	opcodes[0x2b] = (*CPU).nop
	opcodes[0x2c] = (*CPU).xdc

	// slot 15 of each scratchpad family is left undefined
	for i := 0; i < 15; i++ {
		opcodes[0x30+i] = (*CPU).ds
		opcodes[0x40+i] = (*CPU).lrAr
		opcodes[0x50+i] = (*CPU).lrrA
		opcodes[0xc0+i] = (*CPU).as
		opcodes[0xd0+i] = (*CPU).asd
		opcodes[0xe0+i] = (*CPU).xs
		opcodes[0xf0+i] = (*CPU).ns
	}

	for i := 0; i < 8; i++ {
		opcodes[0x60+i] = (*CPU).lisu
		opcodes[0x68+i] = (*CPU).lisl
	}

	opcodes[0x70] = (*CPU).clr
	for i := 0x71; i <= 0x7f; i++ {
		opcodes[i] = (*CPU).lis
	}

	opcodes[0x80] = (*CPU).bt
	opcodes[0x81] = (*CPU).bp
	opcodes[0x82] = (*CPU).bc
	opcodes[0x83] = (*CPU).bt
	opcodes[0x84] = (*CPU).bz
	opcodes[0x85] = (*CPU).bt
	opcodes[0x86] = (*CPU).bt
	opcodes[0x87] = (*CPU).bt
	opcodes[0x88] = (*CPU).am
	opcodes[0x89] = (*CPU).amd
	opcodes[0x8a] = (*CPU).nm
	opcodes[0x8b] = (*CPU).om
	opcodes[0x8c] = (*CPU).xm
	opcodes[0x8d] = (*CPU).cm
	opcodes[0x8e] = (*CPU).adc
	opcodes[0x8f] = (*CPU).br7

	opcodes[0x90] = (*CPU).br
	for i := 0x91; i <= 0x9f; i++ {
		opcodes[i] = (*CPU).bf
	}
	opcodes[0x91] = (*CPU).bn
	opcodes[0x92] = (*CPU).bnc
	opcodes[0x94] = (*CPU).bnz
	opcodes[0x98] = (*CPU).bno

	for i := 0; i < 16; i++ {
		opcodes[0xa0+i] = (*CPU).ins
		opcodes[0xb0+i] = (*CPU).outs
	}
}

// register returns the scratchpad address encoded in the low nibble of the
// opcode. values 12 to 14 address the scratchpad through the ISAR.
func (mc *CPU) register(opcode uint8) uint8 {
	r := opcode & 0x0f
	if r >= 12 {
		return uint8(mc.ISAR)
	}
	return r
}

// adjustISAR applies the auto-increment or auto-decrement of the indirect
// addressing modes. must be called after the scratchpad has been accessed.
func (mc *CPU) adjustISAR(opcode uint8) {
	switch opcode & 0x0f {
	case 13:
		mc.ISAR.Increment()
	case 14:
		mc.ISAR.Decrement()
	}
}

// branch consumes the displacement byte and applies it if the branch is
// taken. taken branches cost one more tick.
func (mc *CPU) branch(taken bool) int {
	n := mc.readOperand8()
	if !taken {
		return 6
	}
	mc.PC0 = uint16(int(mc.PC0) + Displacement(n))
	mc.LastResult.BranchTaken = true
	return 7
}

func (mc *CPU) undefined(_ uint8) int {
	return 2
}

func (mc *CPU) nop(_ uint8) int {
	return 2
}

// 00 to 03: LR A,KU  LR A,KL  LR A,QU  LR A,QL
func (mc *CPU) loadAccFromKQ(opcode uint8) int {
	mc.A = mc.R[12+opcode&0x03]
	return 2
}

// 04 to 07: LR KU,A  LR KL,A  LR QU,A  LR QL,A
func (mc *CPU) storeAccToKQ(opcode uint8) int {
	mc.R[12+opcode&0x03] = mc.A
	return 2
}

func (mc *CPU) lrKP(_ uint8) int {
	mc.Store16(12, mc.PC1)
	return 8
}

func (mc *CPU) lrPK(_ uint8) int {
	mc.PC1 = mc.Read16(12)
	return 8
}

func (mc *CPU) lrAIS(_ uint8) int {
	mc.A = uint8(mc.ISAR)
	return 2
}

func (mc *CPU) lrISA(_ uint8) int {
	mc.ISAR.Load(mc.A)
	return 2
}

func (mc *CPU) pk(_ uint8) int {
	mc.PC1 = mc.PC0
	mc.PC0 = mc.Read16(12)
	return 5
}

func (mc *CPU) lrP0Q(_ uint8) int {
	mc.PC0 = mc.Read16(14)
	return 8
}

func (mc *CPU) lrQDC(_ uint8) int {
	mc.Store16(14, mc.DC0)
	return 8
}

func (mc *CPU) lrDCQ(_ uint8) int {
	mc.DC0 = mc.Read16(14)
	return 8
}

func (mc *CPU) lrDCH(_ uint8) int {
	mc.DC0 = mc.Read16(10)
	return 8
}

func (mc *CPU) lrHDC(_ uint8) int {
	mc.Store16(10, mc.DC0)
	return 8
}

// 12 to 15: SR 1  SL 1  SR 4  SL 4
func (mc *CPU) shift(opcode uint8) int {
	switch opcode {
	case 0x12:
		mc.A = mc.W.Logical(mc.A >> 1)
	case 0x13:
		mc.A = mc.W.Logical(mc.A << 1)
	case 0x14:
		mc.A = mc.W.Logical(mc.A >> 4)
	case 0x15:
		mc.A = mc.W.Logical(mc.A << 4)
	}
	return 2
}

func (mc *CPU) lm(_ uint8) int {
	mc.A = mc.mem.Read(mc.DC0)
	mc.DC0++
	return 5
}

func (mc *CPU) st(_ uint8) int {
	mc.mem.Write(mc.DC0, mc.A)
	mc.DC0++
	return 5
}

func (mc *CPU) com(_ uint8) int {
	mc.A = mc.W.Logical(mc.A ^ 0xff)
	return 2
}

func (mc *CPU) lnk(_ uint8) int {
	var c int
	if mc.W.Carry() {
		c = 1
	}
	mc.A = mc.W.Add(int(mc.A), c)
	return 2
}

func (mc *CPU) di(_ uint8) int {
	mc.W.SetInterrupt(false)
	return 2
}

func (mc *CPU) ei(_ uint8) int {
	mc.W.SetInterrupt(true)
	return 2
}

func (mc *CPU) pop(_ uint8) int {
	mc.PC0 = mc.PC1
	return 4
}

func (mc *CPU) lrWJ(_ uint8) int {
	mc.W = registers.StatusRegister(mc.R[9])
	return 2
}

func (mc *CPU) lrJW(_ uint8) int {
	mc.R[9] = uint8(mc.W)
	return 4
}

func (mc *CPU) inc(_ uint8) int {
	mc.A = mc.W.Add(int(mc.A), 1)
	return 2
}

func (mc *CPU) li(_ uint8) int {
	mc.A = mc.readOperand8()
	return 5
}

func (mc *CPU) ni(_ uint8) int {
	mc.A = mc.W.Logical(mc.A & mc.readOperand8())
	return 5
}

func (mc *CPU) oi(_ uint8) int {
	mc.A = mc.W.Logical(mc.A | mc.readOperand8())
	return 5
}

func (mc *CPU) xi(_ uint8) int {
	mc.A = mc.W.Logical(mc.A ^ mc.readOperand8())
	return 5
}

func (mc *CPU) ai(_ uint8) int {
	mc.A = mc.W.Add(int(mc.A), int(mc.readOperand8()))
	return 5
}

// compare immediate. the accumulator is subtracted from the operand and only
// the flags are kept
func (mc *CPU) ci(_ uint8) int {
	mc.W.Subtract(int(mc.readOperand8()), int(mc.A))
	return 5
}

func (mc *CPU) in(_ uint8) int {
	mc.A = mc.W.Logical(mc.ports.Read(mc.readOperand8()))
	return 8
}

func (mc *CPU) out(_ uint8) int {
	mc.ports.Notify(mc.readOperand8(), mc.A)
	return 8
}

// the accumulator is used to hold the upper byte of the address and so is
// destroyed by PI and JMP
func (mc *CPU) pi(_ uint8) int {
	mc.A = mc.readOperand8()
	mc.PC1 = mc.PC0 + 1
	lo := mc.readOperand8()
	mc.PC0 = uint16(mc.A)<<8 | uint16(lo)
	return 13
}

func (mc *CPU) jmp(_ uint8) int {
	mc.A = mc.readOperand8()
	lo := mc.readOperand8()
	mc.PC0 = uint16(mc.A)<<8 | uint16(lo)
	return 11
}

func (mc *CPU) dci(_ uint8) int {
	mc.DC0 = mc.readOperand16()
	return 12
}

func (mc *CPU) xdc(_ uint8) int {
	mc.DC0, mc.DC1 = mc.DC1, mc.DC0
	return 4
}

// 3x: DS r
func (mc *CPU) ds(opcode uint8) int {
	r := mc.register(opcode)
	mc.R[r] = mc.W.Subtract(int(mc.R[r]), 1)
	mc.adjustISAR(opcode)
	return 3
}

// 4x: LR A,r
func (mc *CPU) lrAr(opcode uint8) int {
	mc.A = mc.R[mc.register(opcode)]
	mc.adjustISAR(opcode)
	return 2
}

// 5x: LR r,A
func (mc *CPU) lrrA(opcode uint8) int {
	mc.R[mc.register(opcode)] = mc.A
	mc.adjustISAR(opcode)
	return 2
}

func (mc *CPU) lisu(opcode uint8) int {
	mc.ISAR.LoadUpper(opcode)
	return 2
}

func (mc *CPU) lisl(opcode uint8) int {
	mc.ISAR.LoadLower(opcode)
	return 2
}

func (mc *CPU) clr(_ uint8) int {
	mc.A = 0
	return 2
}

func (mc *CPU) lis(opcode uint8) int {
	mc.A = opcode & 0x0f
	return 2
}

// bit test. branch if any of the W bits selected by the mask are set
func (mc *CPU) bt(opcode uint8) int {
	return mc.branch(uint8(mc.W)&(opcode&0x07) != 0)
}

func (mc *CPU) bp(_ uint8) int {
	return mc.branch(mc.W.Positive())
}

func (mc *CPU) bc(_ uint8) int {
	return mc.branch(mc.W.Carry())
}

func (mc *CPU) bz(_ uint8) int {
	return mc.branch(mc.W.Zero())
}

func (mc *CPU) am(_ uint8) int {
	mc.A = mc.W.Add(int(mc.A), int(mc.mem.Read(mc.DC0)))
	mc.DC0++
	return 5
}

func (mc *CPU) amd(_ uint8) int {
	mc.A = mc.W.AddDecimal(int(mc.A), int(mc.mem.Read(mc.DC0)))
	mc.DC0++
	return 5
}

func (mc *CPU) nm(_ uint8) int {
	mc.A = mc.W.Logical(mc.A & mc.mem.Read(mc.DC0))
	mc.DC0++
	return 5
}

func (mc *CPU) om(_ uint8) int {
	mc.A = mc.W.Logical(mc.A | mc.mem.Read(mc.DC0))
	mc.DC0++
	return 5
}

func (mc *CPU) xm(_ uint8) int {
	mc.A = mc.W.Logical(mc.A ^ mc.mem.Read(mc.DC0))
	mc.DC0++
	return 5
}

func (mc *CPU) cm(_ uint8) int {
	mc.W.Subtract(int(mc.mem.Read(mc.DC0)), int(mc.A))
	mc.DC0++
	return 5
}

// the accumulator is treated as a signed value
func (mc *CPU) adc(_ uint8) int {
	mc.DC0 += uint16(int16(int8(mc.A)))
	return 5
}

// branch if the lower octal digit of the ISAR is not 7
func (mc *CPU) br7(_ uint8) int {
	return mc.branch(mc.ISAR.Lower() != 7)
}

func (mc *CPU) br(_ uint8) int {
	n := mc.readOperand8()
	mc.PC0 = uint16(int(mc.PC0) + Displacement(n))
	return 7
}

func (mc *CPU) bn(_ uint8) int {
	return mc.branch(!mc.W.Positive())
}

func (mc *CPU) bnc(_ uint8) int {
	return mc.branch(!mc.W.Carry())
}

func (mc *CPU) bnz(_ uint8) int {
	return mc.branch(!mc.W.Zero())
}

func (mc *CPU) bno(_ uint8) int {
	return mc.branch(!mc.W.Overflow())
}

// bit test. branch if none of the W bits selected by the mask are set
func (mc *CPU) bf(opcode uint8) int {
	return mc.branch(uint8(mc.W)&(opcode&0x0f) == 0)
}

// ports 0 and 1 are on the CPU and are quicker to access
func portCycles(port uint8) int {
	if port > 1 {
		return 8
	}
	return 4
}

func (mc *CPU) ins(opcode uint8) int {
	port := opcode & 0x0f
	mc.A = mc.W.Logical(mc.ports.Read(port))
	return portCycles(port)
}

func (mc *CPU) outs(opcode uint8) int {
	port := opcode & 0x0f
	mc.ports.Notify(port, mc.A)
	return portCycles(port)
}

// Cx: AS r
func (mc *CPU) as(opcode uint8) int {
	r := mc.register(opcode)
	mc.A = mc.W.Add(int(mc.A), int(mc.R[r]))
	mc.adjustISAR(opcode)
	return 2
}

// Dx: ASD r
func (mc *CPU) asd(opcode uint8) int {
	r := mc.register(opcode)
	mc.A = mc.W.AddDecimal(int(mc.A), int(mc.R[r]))
	mc.adjustISAR(opcode)
	return 4
}

// Ex: XS r
func (mc *CPU) xs(opcode uint8) int {
	r := mc.register(opcode)
	mc.A = mc.W.Logical(mc.A ^ mc.R[r])
	mc.adjustISAR(opcode)
	return 2
}

// Fx: NS r
func (mc *CPU) ns(opcode uint8) int {
	r := mc.register(opcode)
	mc.A = mc.W.Logical(mc.A & mc.R[r])
	mc.adjustISAR(opcode)
	return 2
}
