package catalog

import "github.com/retroenv/x86tablegen/internal/isa"

// extendedTable adds the two byte opcode table that is reached through 0x0F.
func (b *builder) extendedTable(base *isa.Table) {
	t := b.extension(isa.Model386, base, 0x0F)

	g := b.group(isa.Model386, t, 0x00)
	b.since(isa.Model386, g, 0, isa.OpSLDT, ew)
	b.since(isa.Model386, g, 1, isa.OpSTR, ew)
	b.since(isa.Model386, g, 2, isa.OpLLDT, ew)
	b.since(isa.Model386, g, 3, isa.OpLTR, ew)
	b.since(isa.Model386, g, 4, isa.OpVERR, ew)
	b.since(isa.Model386, g, 5, isa.OpVERW, ew)

	g = b.group(isa.Model386, t, 0x01)
	b.since(isa.Model386, g, 0, isa.OpSGDT, m)
	b.since(isa.Model386, g, 1, isa.OpSIDT, m)
	b.since(isa.Model386, g, 2, isa.OpLGDT, m)
	b.since(isa.Model386, g, 3, isa.OpLIDT, m)
	b.since(isa.Model386, g, 4, isa.OpSMSW, ew)
	b.since(isa.Model386, g, 6, isa.OpLMSW, ew)
	b.since(isa.Model486, g, 7, isa.OpINVLPG, m)

	b.since(isa.Model386, t, 0x02, isa.OpLAR, gv, ew)
	b.since(isa.Model386, t, 0x03, isa.OpLSL, gv, ew)
	b.since(isa.Model386, t, 0x06, isa.OpCLTS)
	b.since(isa.Model486, t, 0x08, isa.OpINVD)
	b.since(isa.Model486, t, 0x09, isa.OpWBINVD)

	b.since(isa.Model386, t, 0x20, isa.OpMOVCR, rd, cd)
	b.since(isa.Model386, t, 0x21, isa.OpMOVDR, rd, dd)
	b.since(isa.Model386, t, 0x22, isa.OpMOVCR, cd, rd)
	b.since(isa.Model386, t, 0x23, isa.OpMOVDR, dd, rd)
	b.since(isa.Model386, t, 0x24, isa.OpMOVTR, rd, td)
	b.since(isa.Model386, t, 0x26, isa.OpMOVTR, td, rd)

	b.since(isa.ModelPentium, t, 0x31, isa.OpRDTSC)

	for i, cond := range conditions {
		enc := byte(i)
		b.conditional(isa.ModelPentium, t, 0x40+enc, isa.OpCMOVcc, cond, gv, ev)
		b.conditional(isa.Model386, t, 0x80+enc, isa.OpJcc, cond, jv)
		b.conditional(isa.Model386, t, 0x90+enc, isa.OpSETcc, cond, eb)
	}

	b.since(isa.Model386, t, 0xA0, isa.OpPUSHSreg, sreg(isa.SegmentFS))
	b.since(isa.Model386, t, 0xA1, isa.OpPOPSreg, sreg(isa.SegmentFS))
	b.since(isa.ModelPentium, t, 0xA2, isa.OpCPUID)
	b.since(isa.Model386, t, 0xA3, isa.OpBT, ev, gv)
	b.since(isa.Model386, t, 0xA4, isa.OpSHLD, ev, gv, ib)
	b.since(isa.Model386, t, 0xA5, isa.OpSHLD, ev, gv, cl)
	b.since(isa.Model386, t, 0xA8, isa.OpPUSHSreg, sreg(isa.SegmentGS))
	b.since(isa.Model386, t, 0xA9, isa.OpPOPSreg, sreg(isa.SegmentGS))
	b.since(isa.Model386, t, 0xAB, isa.OpBTS, ev, gv)
	b.since(isa.Model386, t, 0xAC, isa.OpSHRD, ev, gv, ib)
	b.since(isa.Model386, t, 0xAD, isa.OpSHRD, ev, gv, cl)
	b.since(isa.Model386, t, 0xAF, isa.OpIMUL, gv, ev)

	b.since(isa.Model486, t, 0xB0, isa.OpCMPXCHG, eb, gb)
	b.since(isa.Model486, t, 0xB1, isa.OpCMPXCHG, ev, gv)
	b.since(isa.Model386, t, 0xB2, isa.OpLSS, gv, mp)
	b.since(isa.Model386, t, 0xB3, isa.OpBTR, ev, gv)
	b.since(isa.Model386, t, 0xB4, isa.OpLFS, gv, mp)
	b.since(isa.Model386, t, 0xB5, isa.OpLGS, gv, mp)
	b.since(isa.Model386, t, 0xB6, isa.OpMOVZX, gv, eb)
	b.since(isa.Model386, t, 0xB7, isa.OpMOVZX, gv, ew)

	g = b.group(isa.Model386, t, 0xBA)
	b.since(isa.Model386, g, 4, isa.OpBT, ev, ib)
	b.since(isa.Model386, g, 5, isa.OpBTS, ev, ib)
	b.since(isa.Model386, g, 6, isa.OpBTR, ev, ib)
	b.since(isa.Model386, g, 7, isa.OpBTC, ev, ib)

	b.since(isa.Model386, t, 0xBB, isa.OpBTC, ev, gv)
	b.since(isa.Model386, t, 0xBC, isa.OpBSF, gv, ev)
	b.since(isa.Model386, t, 0xBD, isa.OpBSR, gv, ev)
	b.since(isa.Model386, t, 0xBE, isa.OpMOVSX, gv, eb)
	b.since(isa.Model386, t, 0xBF, isa.OpMOVSX, gv, ew)

	b.since(isa.Model486, t, 0xC0, isa.OpXADD, eb, gb)
	b.since(isa.Model486, t, 0xC1, isa.OpXADD, ev, gv)

	g = b.group(isa.ModelPentium, t, 0xC7)
	b.since(isa.ModelPentium, g, 1, isa.OpCMPXCHG8B, mq)

	for i := range 8 {
		b.since(isa.Model486, t, 0xC8+byte(i), isa.OpBSWAP, regByIndex32(i))
	}
}
