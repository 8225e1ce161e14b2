// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// Operator defines which operation is performed by an instruction.
type Operator int

// List of 6502 operators.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya
)

var mnemonics = [...]string{
	Nop: "NOP", Adc: "ADC", And: "AND", Asl: "ASL", Bcc: "BCC", Bcs: "BCS",
	Beq: "BEQ", Bit: "BIT", Bmi: "BMI", Bne: "BNE", Bpl: "BPL", Brk: "BRK",
	Bvc: "BVC", Bvs: "BVS", Clc: "CLC", Cld: "CLD", Cli: "CLI", Clv: "CLV",
	Cmp: "CMP", Cpx: "CPX", Cpy: "CPY", Dec: "DEC", Dex: "DEX", Dey: "DEY",
	Eor: "EOR", Inc: "INC", Inx: "INX", Iny: "INY", Jmp: "JMP", Jsr: "JSR",
	Lda: "LDA", Ldx: "LDX", Ldy: "LDY", Lsr: "LSR", Ora: "ORA", Pha: "PHA",
	Php: "PHP", Pla: "PLA", Plp: "PLP", Rol: "ROL", Ror: "ROR", Rti: "RTI",
	Rts: "RTS", Sbc: "SBC", Sec: "SEC", Sed: "SED", Sei: "SEI", Sta: "STA",
	Stx: "STX", Sty: "STY", Tax: "TAX", Tay: "TAY", Tsx: "TSX", Txa: "TXA",
	Txs: "TXS", Tya: "TYA",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(mnemonics) {
		return "???"
	}
	return mnemonics[op]
}

// effect returns the effect category of the operator. the addressing mode is
// required because shift and rotate instructions only modify memory when they
// are not operating on the accumulator
func (op Operator) effect(mode AddressingMode) EffectCategory {
	switch op {
	case Sta, Stx, Sty:
		return Write
	case Asl, Lsr, Rol, Ror:
		if mode == Implied {
			return Read
		}
		return RMW
	case Inc, Dec:
		return RMW
	case Bcc, Bcs, Beq, Bmi, Bne, Bpl, Bvc, Bvs, Jmp:
		return Flow
	case Jsr, Rts:
		return Subroutine
	case Brk, Rti:
		return Interrupt
	}
	return Read
}
