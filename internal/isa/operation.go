package isa

// Operation identifies the operation an opcode performs. The value is the
// identifier of the operation in the generated sources.
type Operation string

// Pseudo operations used by prefixes and extension records.
const (
	OpInvalid           Operation = "Operation_Invalid"
	OpExtension         Operation = "Operation_Extension"
	OpExtensionModRMReg Operation = "Operation_Extension_ModRM_Reg"
	OpExtensionModRMX87 Operation = "Operation_Extension_ModRM_X87"
	OpSegmentPrefix     Operation = "Operation_Segment_Prefix"
	OpRepPrefix         Operation = "Operation_Rep_Prefix"
	OpRepNEPrefix       Operation = "Operation_RepNE_Prefix"
	OpLockPrefix        Operation = "Operation_Lock_Prefix"
	OpOperandSizePrefix Operation = "Operation_OperandSize_Prefix"
	OpAddressSizePrefix Operation = "Operation_AddressSize_Prefix"
	OpEscape            Operation = "Operation_Escape"
)

// 8086 operations.
const (
	OpAAA      Operation = "Operation_AAA"
	OpAAD      Operation = "Operation_AAD"
	OpAAM      Operation = "Operation_AAM"
	OpAAS      Operation = "Operation_AAS"
	OpADC      Operation = "Operation_ADC"
	OpADD      Operation = "Operation_ADD"
	OpAND      Operation = "Operation_AND"
	OpCALLNear Operation = "Operation_CALL_Near"
	OpCALLFar  Operation = "Operation_CALL_Far"
	OpCBW      Operation = "Operation_CBW"
	OpCLC      Operation = "Operation_CLC"
	OpCLD      Operation = "Operation_CLD"
	OpCLI      Operation = "Operation_CLI"
	OpCMC      Operation = "Operation_CMC"
	OpCMP      Operation = "Operation_CMP"
	OpCMPS     Operation = "Operation_CMPS"
	OpCWD      Operation = "Operation_CWD"
	OpDAA      Operation = "Operation_DAA"
	OpDAS      Operation = "Operation_DAS"
	OpDEC      Operation = "Operation_DEC"
	OpDIV      Operation = "Operation_DIV"
	OpESC      Operation = "Operation_ESC"
	OpHLT      Operation = "Operation_HLT"
	OpIDIV     Operation = "Operation_IDIV"
	OpIMUL     Operation = "Operation_IMUL"
	OpIN       Operation = "Operation_IN"
	OpINC      Operation = "Operation_INC"
	OpINT      Operation = "Operation_INT"
	OpINT3     Operation = "Operation_INT3"
	OpINTO     Operation = "Operation_INTO"
	OpIRET     Operation = "Operation_IRET"
	OpJcc      Operation = "Operation_Jcc"
	OpJCXZ     Operation = "Operation_JCXZ"
	OpJMPNear  Operation = "Operation_JMP_Near"
	OpJMPFar   Operation = "Operation_JMP_Far"
	OpLAHF     Operation = "Operation_LAHF"
	OpLDS      Operation = "Operation_LDS"
	OpLEA      Operation = "Operation_LEA"
	OpLES      Operation = "Operation_LES"
	OpLOCK     Operation = "Operation_LOCK"
	OpLODS     Operation = "Operation_LODS"
	OpLOOP     Operation = "Operation_LOOP"
	OpLXS      Operation = "Operation_LXS"
	OpMOV      Operation = "Operation_MOV"
	OpMOVS     Operation = "Operation_MOVS"
	OpMOVSreg  Operation = "Operation_MOV_Sreg"
	OpMUL      Operation = "Operation_MUL"
	OpNEG      Operation = "Operation_NEG"
	OpNOP      Operation = "Operation_NOP"
	OpNOT      Operation = "Operation_NOT"
	OpOR       Operation = "Operation_OR"
	OpOUT      Operation = "Operation_OUT"
	OpPOP      Operation = "Operation_POP"
	OpPOPSreg  Operation = "Operation_POP_Sreg"
	OpPOPF     Operation = "Operation_POPF"
	OpPUSH     Operation = "Operation_PUSH"
	OpPUSHSreg Operation = "Operation_PUSH_Sreg"
	OpPUSHF    Operation = "Operation_PUSHF"
	OpRCL      Operation = "Operation_RCL"
	OpRCR      Operation = "Operation_RCR"
	OpREPxx    Operation = "Operation_REPxx"
	OpRETNear  Operation = "Operation_RET_Near"
	OpRETFar   Operation = "Operation_RET_Far"
	OpROL      Operation = "Operation_ROL"
	OpROR      Operation = "Operation_ROR"
	OpSAHF     Operation = "Operation_SAHF"
	OpSAL      Operation = "Operation_SAL"
	OpSALC     Operation = "Operation_SALC"
	OpSAR      Operation = "Operation_SAR"
	OpSBB      Operation = "Operation_SBB"
	OpSCAS     Operation = "Operation_SCAS"
	OpSHL      Operation = "Operation_SHL"
	OpSHR      Operation = "Operation_SHR"
	OpSTC      Operation = "Operation_STC"
	OpSTD      Operation = "Operation_STD"
	OpSTI      Operation = "Operation_STI"
	OpSTOS     Operation = "Operation_STOS"
	OpSUB      Operation = "Operation_SUB"
	OpTEST     Operation = "Operation_TEST"
	OpWAIT     Operation = "Operation_WAIT"
	OpXCHG     Operation = "Operation_XCHG"
	OpXLAT     Operation = "Operation_XLAT"
	OpXOR      Operation = "Operation_XOR"
)

// 80286+ operations.
const (
	OpBOUND Operation = "Operation_BOUND"
	OpBSF   Operation = "Operation_BSF"
	OpBSR   Operation = "Operation_BSR"
	OpBT    Operation = "Operation_BT"
	OpBTS   Operation = "Operation_BTS"
	OpBTR   Operation = "Operation_BTR"
	OpBTC   Operation = "Operation_BTC"
	OpSHLD  Operation = "Operation_SHLD"
	OpSHRD  Operation = "Operation_SHRD"
	OpINS   Operation = "Operation_INS"
	OpOUTS  Operation = "Operation_OUTS"
	OpCLTS  Operation = "Operation_CLTS"
	OpENTER Operation = "Operation_ENTER"
	OpLEAVE Operation = "Operation_LEAVE"
	OpLSS   Operation = "Operation_LSS"
	OpLGDT  Operation = "Operation_LGDT"
	OpSGDT  Operation = "Operation_SGDT"
	OpLIDT  Operation = "Operation_LIDT"
	OpSIDT  Operation = "Operation_SIDT"
	OpLLDT  Operation = "Operation_LLDT"
	OpSLDT  Operation = "Operation_SLDT"
	OpLTR   Operation = "Operation_LTR"
	OpSTR   Operation = "Operation_STR"
	OpLMSW  Operation = "Operation_LMSW"
	OpSMSW  Operation = "Operation_SMSW"
	OpVERR  Operation = "Operation_VERR"
	OpVERW  Operation = "Operation_VERW"
	OpARPL  Operation = "Operation_ARPL"
	OpLAR   Operation = "Operation_LAR"
	OpLSL   Operation = "Operation_LSL"
	OpPUSHA Operation = "Operation_PUSHA"
	OpPOPA  Operation = "Operation_POPA"
)

// 80386+ operations.
const (
	OpLFS   Operation = "Operation_LFS"
	OpLGS   Operation = "Operation_LGS"
	OpMOVSX Operation = "Operation_MOVSX"
	OpMOVZX Operation = "Operation_MOVZX"
	OpMOVCR Operation = "Operation_MOV_CR"
	OpMOVDR Operation = "Operation_MOV_DR"
	OpMOVTR Operation = "Operation_MOV_TR"
	OpSETcc Operation = "Operation_SETcc"
)

// 80486+ operations.
const (
	OpBSWAP   Operation = "Operation_BSWAP"
	OpCMPXCHG Operation = "Operation_CMPXCHG"
	OpCMOVcc  Operation = "Operation_CMOVcc"
	OpINVD    Operation = "Operation_INVD"
	OpWBINVD  Operation = "Operation_WBINVD"
	OpINVLPG  Operation = "Operation_INVLPG"
	OpXADD    Operation = "Operation_XADD"
)

// Pentium+ operations.
const (
	OpCPUID     Operation = "Operation_CPUID"
	OpRDTSC     Operation = "Operation_RDTSC"
	OpCMPXCHG8B Operation = "Operation_CMPXCHG8B"
)

// 8087+ operations.
const (
	OpF2XM1   Operation = "Operation_F2XM1"
	OpFABS    Operation = "Operation_FABS"
	OpFADD    Operation = "Operation_FADD"
	OpFADDP   Operation = "Operation_FADDP"
	OpFBLD    Operation = "Operation_FBLD"
	OpFBSTP   Operation = "Operation_FBSTP"
	OpFCHS    Operation = "Operation_FCHS"
	OpFCOM    Operation = "Operation_FCOM"
	OpFCOMP   Operation = "Operation_FCOMP"
	OpFCOMPP  Operation = "Operation_FCOMPP"
	OpFDECSTP Operation = "Operation_FDECSTP"
	OpFDIV    Operation = "Operation_FDIV"
	OpFDIVP   Operation = "Operation_FDIVP"
	OpFDIVR   Operation = "Operation_FDIVR"
	OpFDIVRP  Operation = "Operation_FDIVRP"
	OpFFREE   Operation = "Operation_FFREE"
	OpFIADD   Operation = "Operation_FIADD"
	OpFICOM   Operation = "Operation_FICOM"
	OpFICOMP  Operation = "Operation_FICOMP"
	OpFIDIV   Operation = "Operation_FIDIV"
	OpFIDIVR  Operation = "Operation_FIDIVR"
	OpFILD    Operation = "Operation_FILD"
	OpFIMUL   Operation = "Operation_FIMUL"
	OpFINCSTP Operation = "Operation_FINCSTP"
	OpFIST    Operation = "Operation_FIST"
	OpFISTP   Operation = "Operation_FISTP"
	OpFISUB   Operation = "Operation_FISUB"
	OpFISUBR  Operation = "Operation_FISUBR"
	OpFLD     Operation = "Operation_FLD"
	OpFLD1    Operation = "Operation_FLD1"
	OpFLDCW   Operation = "Operation_FLDCW"
	OpFLDENV  Operation = "Operation_FLDENV"
	OpFLDL2E  Operation = "Operation_FLDL2E"
	OpFLDL2T  Operation = "Operation_FLDL2T"
	OpFLDLG2  Operation = "Operation_FLDLG2"
	OpFLDLN2  Operation = "Operation_FLDLN2"
	OpFLDPI   Operation = "Operation_FLDPI"
	OpFLDZ    Operation = "Operation_FLDZ"
	OpFMUL    Operation = "Operation_FMUL"
	OpFMULP   Operation = "Operation_FMULP"
	OpFNCLEX  Operation = "Operation_FNCLEX"
	OpFNDISI  Operation = "Operation_FNDISI"
	OpFNENI   Operation = "Operation_FNENI"
	OpFNINIT  Operation = "Operation_FNINIT"
	OpFNOP    Operation = "Operation_FNOP"
	OpFNSAVE  Operation = "Operation_FNSAVE"
	OpFNSTCW  Operation = "Operation_FNSTCW"
	OpFNSTENV Operation = "Operation_FNSTENV"
	OpFNSTSW  Operation = "Operation_FNSTSW"
	OpFPATAN  Operation = "Operation_FPATAN"
	OpFPREM   Operation = "Operation_FPREM"
	OpFPTAN   Operation = "Operation_FPTAN"
	OpFRNDINT Operation = "Operation_FRNDINT"
	OpFRSTOR  Operation = "Operation_FRSTOR"
	OpFSCALE  Operation = "Operation_FSCALE"
	OpFSQRT   Operation = "Operation_FSQRT"
	OpFST     Operation = "Operation_FST"
	OpFSTP    Operation = "Operation_FSTP"
	OpFSUB    Operation = "Operation_FSUB"
	OpFSUBP   Operation = "Operation_FSUBP"
	OpFSUBR   Operation = "Operation_FSUBR"
	OpFSUBRP  Operation = "Operation_FSUBRP"
	OpFTST    Operation = "Operation_FTST"
	OpFXAM    Operation = "Operation_FXAM"
	OpFXCH    Operation = "Operation_FXCH"
	OpFXTRACT Operation = "Operation_FXTRACT"
	OpFYL2X   Operation = "Operation_FYL2X"
	OpFYL2XP1 Operation = "Operation_FYL2XP1"
)

// 80287+ operations.
const (
	OpFSETPM Operation = "Operation_FSETPM"
)

// 80387+ operations.
const (
	OpFCOS    Operation = "Operation_FCOS"
	OpFPREM1  Operation = "Operation_FPREM1"
	OpFSIN    Operation = "Operation_FSIN"
	OpFSINCOS Operation = "Operation_FSINCOS"
	OpFUCOM   Operation = "Operation_FUCOM"
	OpFUCOMP  Operation = "Operation_FUCOMP"
	OpFUCOMPP Operation = "Operation_FUCOMPP"
)
