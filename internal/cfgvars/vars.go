package cfgvars

// Published variable names. Consumers should look values up through these
// constants rather than raw strings so typos surface at compile time.
const (
	KeyBaseDataDir        = "BASE_DATA_DIR"
	KeyIdentifier         = "IDENTIFIER"
	KeyDicomRootPath      = "DICOM_ROOT_PATH"
	KeySpectroTemplate    = "SPECTRO_TEMPLATE"
	KeyDcmPattern         = "DCM_PATTERN"
	KeyNumTRsOneBlock     = "NUM_TRS_ONE_FMRI_BLOCK"
	KeyFMRIBlockThreshold = "FMRI_BLOCK_THRESHOLD"
	KeyModalityConditions = "MODALITY_CONDITIONS"
	KeyDicominfoTSVName   = "DICOMINFO_TSV_NAME"
	KeyExcludeScanIDs     = "EXCLUDE_SCAN_IDS"
)

// PlaceholderSubject is the token in DCM_PATTERN that downstream tooling
// (heudiconv) replaces with a subject identifier.
const PlaceholderSubject = "subject"

const (
	defaultIdentifier      = "PROJECT1"
	defaultDicomRoot       = "raw/dicom"
	defaultSpectroTemplate = "spectro/*/*/MRS-data"
	// heudiconv requires the {subject} placeholder in the pattern.
	defaultDcmPattern = defaultDicomRoot + "/{subject}/SCANS/*/DICOM/*.dcm"

	// Number of TRs that make up one fMRI block.
	defaultNumTRsOneBlock = 418
	// At least 40% of one block must be present for a run to count.
	defaultFMRIBlockThreshold = 0.4

	// Name of the dicominfo sheet after sensitive columns are dropped
	// (original file name: dicominfo.tsv).
	defaultDicominfoTSVName = "dicominfo_mod.tsv"
)

// Default returns the built-in variable table.
func Default() Source {
	return Static{
		Constant(KeyIdentifier, defaultIdentifier),
		RelPath(KeyDicomRootPath, defaultDicomRoot),
		RelPath(KeySpectroTemplate, defaultSpectroTemplate),
		RelPath(KeyDcmPattern, defaultDcmPattern),
		Constant(KeyNumTRsOneBlock, defaultNumTRsOneBlock),
		Constant(KeyFMRIBlockThreshold, defaultFMRIBlockThreshold),
		Constant(KeyModalityConditions, Modalities()),
		Constant(KeyDicominfoTSVName, defaultDicominfoTSVName),
		Constant(KeyExcludeScanIDs, []string{}),
	}
}
