package dictionary

// Tags referenced by name elsewhere in the module.
const (
	FileMetaInformationGroupLength    Tag = 0x00020000
	FileMetaInformationVersion        Tag = 0x00020001
	MediaStorageSOPClassUID           Tag = 0x00020002
	MediaStorageSOPInstanceUID        Tag = 0x00020003
	TransferSyntaxUID                 Tag = 0x00020010
	ImplementationClassUID            Tag = 0x00020012
	ImplementationVersionName         Tag = 0x00020013
	SourceApplicationEntityTitle      Tag = 0x00020016
	SpecificCharacterSet              Tag = 0x00080005
	ImageType                         Tag = 0x00080008
	InstanceCreationDate              Tag = 0x00080012
	InstanceCreationTime              Tag = 0x00080013
	SOPClassUID                       Tag = 0x00080016
	SOPInstanceUID                    Tag = 0x00080018
	StudyDate                         Tag = 0x00080020
	SeriesDate                        Tag = 0x00080021
	AcquisitionDate                   Tag = 0x00080022
	ContentDate                       Tag = 0x00080023
	StudyTime                         Tag = 0x00080030
	SeriesTime                        Tag = 0x00080031
	AcquisitionTime                   Tag = 0x00080032
	ContentTime                       Tag = 0x00080033
	AccessionNumber                   Tag = 0x00080050
	Modality                          Tag = 0x00080060
	ConversionType                    Tag = 0x00080064
	Manufacturer                      Tag = 0x00080070
	InstitutionName                   Tag = 0x00080080
	ReferringPhysicianName            Tag = 0x00080090
	StationName                       Tag = 0x00081010
	StudyDescription                  Tag = 0x00081030
	SeriesDescription                 Tag = 0x0008103E
	ManufacturerModelName             Tag = 0x00081090
	ReferencedImageSequence           Tag = 0x00081140
	ReferencedRawDataSequence         Tag = 0x00089121
	PatientName                       Tag = 0x00100010
	PatientID                         Tag = 0x00100020
	PatientBirthDate                  Tag = 0x00100030
	PatientSex                        Tag = 0x00100040
	PatientAge                        Tag = 0x00101010
	PatientSize                       Tag = 0x00101020
	PatientWeight                     Tag = 0x00101030
	BodyPartExamined                  Tag = 0x00180015
	SliceThickness                    Tag = 0x00180050
	KVP                               Tag = 0x00180060
	RepetitionTime                    Tag = 0x00180080
	EchoTime                          Tag = 0x00180081
	MagneticFieldStrength             Tag = 0x00180087
	SpacingBetweenSlices              Tag = 0x00180088
	SoftwareVersions                  Tag = 0x00181020
	ProtocolName                      Tag = 0x00181030
	ExposureTime                      Tag = 0x00181150
	XRayTubeCurrent                   Tag = 0x00181151
	PatientPosition                   Tag = 0x00185100
	StudyInstanceUID                  Tag = 0x0020000D
	SeriesInstanceUID                 Tag = 0x0020000E
	StudyID                           Tag = 0x00200010
	SeriesNumber                      Tag = 0x00200011
	AcquisitionNumber                 Tag = 0x00200012
	InstanceNumber                    Tag = 0x00200013
	PatientOrientation                Tag = 0x00200020
	ImagePositionPatient              Tag = 0x00200032
	ImageOrientationPatient           Tag = 0x00200037
	FrameOfReferenceUID               Tag = 0x00200052
	PositionReferenceIndicator        Tag = 0x00201040
	SliceLocation                     Tag = 0x00201041
	SamplesPerPixel                   Tag = 0x00280002
	PhotometricInterpretation         Tag = 0x00280004
	PlanarConfiguration               Tag = 0x00280006
	NumberOfFrames                    Tag = 0x00280008
	Rows                              Tag = 0x00280010
	Columns                           Tag = 0x00280011
	PixelSpacing                      Tag = 0x00280030
	BitsAllocated                     Tag = 0x00280100
	BitsStored                        Tag = 0x00280101
	HighBit                           Tag = 0x00280102
	PixelRepresentation               Tag = 0x00280103
	SmallestImagePixelValue           Tag = 0x00280106
	LargestImagePixelValue            Tag = 0x00280107
	WindowCenter                      Tag = 0x00281050
	WindowWidth                       Tag = 0x00281051
	RescaleIntercept                  Tag = 0x00281052
	RescaleSlope                      Tag = 0x00281053
	RescaleType                       Tag = 0x00281054
	WindowCenterWidthExplanation      Tag = 0x00281055
	LossyImageCompression             Tag = 0x00282110
	RequestedProcedureDescription     Tag = 0x00321060
	PerformedProcedureStepStartDate   Tag = 0x00400244
	PerformedProcedureStepDescription Tag = 0x00400254
	NumberOfSlices                    Tag = 0x00540081
	PixelData                         Tag = 0x7FE00010
	Item                              Tag = 0xFFFEE000
	ItemDelimitationItem              Tag = 0xFFFEE00D
	SequenceDelimitationItem          Tag = 0xFFFEE0DD
)

// DicomDictionary maps a Tag to its registry entry.
var DicomDictionary = map[Tag]*DictEntry{
	FileMetaInformationGroupLength:    {Tag: FileMetaInformationGroupLength, Name: "FileMetaInformationGroupLength", NameHuman: "File Meta Information Group Length", VR: "UL", VM: "1"},
	FileMetaInformationVersion:        {Tag: FileMetaInformationVersion, Name: "FileMetaInformationVersion", NameHuman: "File Meta Information Version", VR: "OB", VM: "1"},
	MediaStorageSOPClassUID:           {Tag: MediaStorageSOPClassUID, Name: "MediaStorageSOPClassUID", NameHuman: "Media Storage SOP Class UID", VR: "UI", VM: "1"},
	MediaStorageSOPInstanceUID:        {Tag: MediaStorageSOPInstanceUID, Name: "MediaStorageSOPInstanceUID", NameHuman: "Media Storage SOP Instance UID", VR: "UI", VM: "1"},
	TransferSyntaxUID:                 {Tag: TransferSyntaxUID, Name: "TransferSyntaxUID", NameHuman: "Transfer Syntax UID", VR: "UI", VM: "1"},
	ImplementationClassUID:            {Tag: ImplementationClassUID, Name: "ImplementationClassUID", NameHuman: "Implementation Class UID", VR: "UI", VM: "1"},
	ImplementationVersionName:         {Tag: ImplementationVersionName, Name: "ImplementationVersionName", NameHuman: "Implementation Version Name", VR: "SH", VM: "1"},
	SourceApplicationEntityTitle:      {Tag: SourceApplicationEntityTitle, Name: "SourceApplicationEntityTitle", NameHuman: "Source Application Entity Title", VR: "AE", VM: "1"},
	SpecificCharacterSet:              {Tag: SpecificCharacterSet, Name: "SpecificCharacterSet", NameHuman: "Specific Character Set", VR: "CS", VM: "1-n"},
	ImageType:                         {Tag: ImageType, Name: "ImageType", NameHuman: "Image Type", VR: "CS", VM: "2-n"},
	InstanceCreationDate:              {Tag: InstanceCreationDate, Name: "InstanceCreationDate", NameHuman: "Instance Creation Date", VR: "DA", VM: "1"},
	InstanceCreationTime:              {Tag: InstanceCreationTime, Name: "InstanceCreationTime", NameHuman: "Instance Creation Time", VR: "TM", VM: "1"},
	SOPClassUID:                       {Tag: SOPClassUID, Name: "SOPClassUID", NameHuman: "SOP Class UID", VR: "UI", VM: "1"},
	SOPInstanceUID:                    {Tag: SOPInstanceUID, Name: "SOPInstanceUID", NameHuman: "SOP Instance UID", VR: "UI", VM: "1"},
	StudyDate:                         {Tag: StudyDate, Name: "StudyDate", NameHuman: "Study Date", VR: "DA", VM: "1"},
	SeriesDate:                        {Tag: SeriesDate, Name: "SeriesDate", NameHuman: "Series Date", VR: "DA", VM: "1"},
	AcquisitionDate:                   {Tag: AcquisitionDate, Name: "AcquisitionDate", NameHuman: "Acquisition Date", VR: "DA", VM: "1"},
	ContentDate:                       {Tag: ContentDate, Name: "ContentDate", NameHuman: "Content Date", VR: "DA", VM: "1"},
	StudyTime:                         {Tag: StudyTime, Name: "StudyTime", NameHuman: "Study Time", VR: "TM", VM: "1"},
	SeriesTime:                        {Tag: SeriesTime, Name: "SeriesTime", NameHuman: "Series Time", VR: "TM", VM: "1"},
	AcquisitionTime:                   {Tag: AcquisitionTime, Name: "AcquisitionTime", NameHuman: "Acquisition Time", VR: "TM", VM: "1"},
	ContentTime:                       {Tag: ContentTime, Name: "ContentTime", NameHuman: "Content Time", VR: "TM", VM: "1"},
	AccessionNumber:                   {Tag: AccessionNumber, Name: "AccessionNumber", NameHuman: "Accession Number", VR: "SH", VM: "1"},
	Modality:                          {Tag: Modality, Name: "Modality", NameHuman: "Modality", VR: "CS", VM: "1"},
	ConversionType:                    {Tag: ConversionType, Name: "ConversionType", NameHuman: "Conversion Type", VR: "CS", VM: "1"},
	Manufacturer:                      {Tag: Manufacturer, Name: "Manufacturer", NameHuman: "Manufacturer", VR: "LO", VM: "1"},
	InstitutionName:                   {Tag: InstitutionName, Name: "InstitutionName", NameHuman: "Institution Name", VR: "LO", VM: "1"},
	ReferringPhysicianName:            {Tag: ReferringPhysicianName, Name: "ReferringPhysicianName", NameHuman: "Referring Physician's Name", VR: "PN", VM: "1"},
	StationName:                       {Tag: StationName, Name: "StationName", NameHuman: "Station Name", VR: "SH", VM: "1"},
	StudyDescription:                  {Tag: StudyDescription, Name: "StudyDescription", NameHuman: "Study Description", VR: "LO", VM: "1"},
	SeriesDescription:                 {Tag: SeriesDescription, Name: "SeriesDescription", NameHuman: "Series Description", VR: "LO", VM: "1"},
	ManufacturerModelName:             {Tag: ManufacturerModelName, Name: "ManufacturerModelName", NameHuman: "Manufacturer's Model Name", VR: "LO", VM: "1"},
	ReferencedImageSequence:           {Tag: ReferencedImageSequence, Name: "ReferencedImageSequence", NameHuman: "Referenced Image Sequence", VR: "SQ", VM: "1"},
	ReferencedRawDataSequence:         {Tag: ReferencedRawDataSequence, Name: "ReferencedRawDataSequence", NameHuman: "Referenced Raw Data Sequence", VR: "SQ", VM: "1"},
	PatientName:                       {Tag: PatientName, Name: "PatientName", NameHuman: "Patient's Name", VR: "PN", VM: "1"},
	PatientID:                         {Tag: PatientID, Name: "PatientID", NameHuman: "Patient ID", VR: "LO", VM: "1"},
	PatientBirthDate:                  {Tag: PatientBirthDate, Name: "PatientBirthDate", NameHuman: "Patient's Birth Date", VR: "DA", VM: "1"},
	PatientSex:                        {Tag: PatientSex, Name: "PatientSex", NameHuman: "Patient's Sex", VR: "CS", VM: "1"},
	PatientAge:                        {Tag: PatientAge, Name: "PatientAge", NameHuman: "Patient's Age", VR: "AS", VM: "1"},
	PatientSize:                       {Tag: PatientSize, Name: "PatientSize", NameHuman: "Patient's Size", VR: "DS", VM: "1"},
	PatientWeight:                     {Tag: PatientWeight, Name: "PatientWeight", NameHuman: "Patient's Weight", VR: "DS", VM: "1"},
	BodyPartExamined:                  {Tag: BodyPartExamined, Name: "BodyPartExamined", NameHuman: "Body Part Examined", VR: "CS", VM: "1"},
	SliceThickness:                    {Tag: SliceThickness, Name: "SliceThickness", NameHuman: "Slice Thickness", VR: "DS", VM: "1"},
	KVP:                               {Tag: KVP, Name: "KVP", NameHuman: "KVP", VR: "DS", VM: "1"},
	RepetitionTime:                    {Tag: RepetitionTime, Name: "RepetitionTime", NameHuman: "Repetition Time", VR: "DS", VM: "1"},
	EchoTime:                          {Tag: EchoTime, Name: "EchoTime", NameHuman: "Echo Time", VR: "DS", VM: "1"},
	MagneticFieldStrength:             {Tag: MagneticFieldStrength, Name: "MagneticFieldStrength", NameHuman: "Magnetic Field Strength", VR: "DS", VM: "1"},
	SpacingBetweenSlices:              {Tag: SpacingBetweenSlices, Name: "SpacingBetweenSlices", NameHuman: "Spacing Between Slices", VR: "DS", VM: "1"},
	SoftwareVersions:                  {Tag: SoftwareVersions, Name: "SoftwareVersions", NameHuman: "Software Versions", VR: "LO", VM: "1-n"},
	ProtocolName:                      {Tag: ProtocolName, Name: "ProtocolName", NameHuman: "Protocol Name", VR: "LO", VM: "1"},
	ExposureTime:                      {Tag: ExposureTime, Name: "ExposureTime", NameHuman: "Exposure Time", VR: "IS", VM: "1"},
	XRayTubeCurrent:                   {Tag: XRayTubeCurrent, Name: "XRayTubeCurrent", NameHuman: "X-Ray Tube Current", VR: "IS", VM: "1"},
	PatientPosition:                   {Tag: PatientPosition, Name: "PatientPosition", NameHuman: "Patient Position", VR: "CS", VM: "1"},
	StudyInstanceUID:                  {Tag: StudyInstanceUID, Name: "StudyInstanceUID", NameHuman: "Study Instance UID", VR: "UI", VM: "1"},
	SeriesInstanceUID:                 {Tag: SeriesInstanceUID, Name: "SeriesInstanceUID", NameHuman: "Series Instance UID", VR: "UI", VM: "1"},
	StudyID:                           {Tag: StudyID, Name: "StudyID", NameHuman: "Study ID", VR: "SH", VM: "1"},
	SeriesNumber:                      {Tag: SeriesNumber, Name: "SeriesNumber", NameHuman: "Series Number", VR: "IS", VM: "1"},
	AcquisitionNumber:                 {Tag: AcquisitionNumber, Name: "AcquisitionNumber", NameHuman: "Acquisition Number", VR: "IS", VM: "1"},
	InstanceNumber:                    {Tag: InstanceNumber, Name: "InstanceNumber", NameHuman: "Instance Number", VR: "IS", VM: "1"},
	PatientOrientation:                {Tag: PatientOrientation, Name: "PatientOrientation", NameHuman: "Patient Orientation", VR: "CS", VM: "2"},
	ImagePositionPatient:              {Tag: ImagePositionPatient, Name: "ImagePositionPatient", NameHuman: "Image Position (Patient)", VR: "DS", VM: "3"},
	ImageOrientationPatient:           {Tag: ImageOrientationPatient, Name: "ImageOrientationPatient", NameHuman: "Image Orientation (Patient)", VR: "DS", VM: "6"},
	FrameOfReferenceUID:               {Tag: FrameOfReferenceUID, Name: "FrameOfReferenceUID", NameHuman: "Frame of Reference UID", VR: "UI", VM: "1"},
	PositionReferenceIndicator:        {Tag: PositionReferenceIndicator, Name: "PositionReferenceIndicator", NameHuman: "Position Reference Indicator", VR: "LO", VM: "1"},
	SliceLocation:                     {Tag: SliceLocation, Name: "SliceLocation", NameHuman: "Slice Location", VR: "DS", VM: "1"},
	SamplesPerPixel:                   {Tag: SamplesPerPixel, Name: "SamplesPerPixel", NameHuman: "Samples per Pixel", VR: "US", VM: "1"},
	PhotometricInterpretation:         {Tag: PhotometricInterpretation, Name: "PhotometricInterpretation", NameHuman: "Photometric Interpretation", VR: "CS", VM: "1"},
	PlanarConfiguration:               {Tag: PlanarConfiguration, Name: "PlanarConfiguration", NameHuman: "Planar Configuration", VR: "US", VM: "1"},
	NumberOfFrames:                    {Tag: NumberOfFrames, Name: "NumberOfFrames", NameHuman: "Number of Frames", VR: "IS", VM: "1"},
	Rows:                              {Tag: Rows, Name: "Rows", NameHuman: "Rows", VR: "US", VM: "1"},
	Columns:                           {Tag: Columns, Name: "Columns", NameHuman: "Columns", VR: "US", VM: "1"},
	PixelSpacing:                      {Tag: PixelSpacing, Name: "PixelSpacing", NameHuman: "Pixel Spacing", VR: "DS", VM: "2"},
	BitsAllocated:                     {Tag: BitsAllocated, Name: "BitsAllocated", NameHuman: "Bits Allocated", VR: "US", VM: "1"},
	BitsStored:                        {Tag: BitsStored, Name: "BitsStored", NameHuman: "Bits Stored", VR: "US", VM: "1"},
	HighBit:                           {Tag: HighBit, Name: "HighBit", NameHuman: "High Bit", VR: "US", VM: "1"},
	PixelRepresentation:               {Tag: PixelRepresentation, Name: "PixelRepresentation", NameHuman: "Pixel Representation", VR: "US", VM: "1"},
	SmallestImagePixelValue:           {Tag: SmallestImagePixelValue, Name: "SmallestImagePixelValue", NameHuman: "Smallest Image Pixel Value", VR: "US", VM: "1"},
	LargestImagePixelValue:            {Tag: LargestImagePixelValue, Name: "LargestImagePixelValue", NameHuman: "Largest Image Pixel Value", VR: "US", VM: "1"},
	WindowCenter:                      {Tag: WindowCenter, Name: "WindowCenter", NameHuman: "Window Center", VR: "DS", VM: "1-n"},
	WindowWidth:                       {Tag: WindowWidth, Name: "WindowWidth", NameHuman: "Window Width", VR: "DS", VM: "1-n"},
	RescaleIntercept:                  {Tag: RescaleIntercept, Name: "RescaleIntercept", NameHuman: "Rescale Intercept", VR: "DS", VM: "1"},
	RescaleSlope:                      {Tag: RescaleSlope, Name: "RescaleSlope", NameHuman: "Rescale Slope", VR: "DS", VM: "1"},
	RescaleType:                       {Tag: RescaleType, Name: "RescaleType", NameHuman: "Rescale Type", VR: "LO", VM: "1"},
	WindowCenterWidthExplanation:      {Tag: WindowCenterWidthExplanation, Name: "WindowCenterWidthExplanation", NameHuman: "Window Center & Width Explanation", VR: "LO", VM: "1-n"},
	LossyImageCompression:             {Tag: LossyImageCompression, Name: "LossyImageCompression", NameHuman: "Lossy Image Compression", VR: "CS", VM: "1"},
	RequestedProcedureDescription:     {Tag: RequestedProcedureDescription, Name: "RequestedProcedureDescription", NameHuman: "Requested Procedure Description", VR: "LO", VM: "1"},
	PerformedProcedureStepStartDate:   {Tag: PerformedProcedureStepStartDate, Name: "PerformedProcedureStepStartDate", NameHuman: "Performed Procedure Step Start Date", VR: "DA", VM: "1"},
	PerformedProcedureStepDescription: {Tag: PerformedProcedureStepDescription, Name: "PerformedProcedureStepDescription", NameHuman: "Performed Procedure Step Description", VR: "LO", VM: "1"},
	NumberOfSlices:                    {Tag: NumberOfSlices, Name: "NumberOfSlices", NameHuman: "Number of Slices", VR: "US", VM: "1"},
	PixelData:                         {Tag: PixelData, Name: "PixelData", NameHuman: "Pixel Data", VR: "OW", VM: "1"},
	Item:                              {Tag: Item, Name: "Item", NameHuman: "Item", VR: "NONE", VM: "1"},
	ItemDelimitationItem:              {Tag: ItemDelimitationItem, Name: "ItemDelimitationItem", NameHuman: "Item Delimitation Item", VR: "NONE", VM: "1"},
	SequenceDelimitationItem:          {Tag: SequenceDelimitationItem, Name: "SequenceDelimitationItem", NameHuman: "Sequence Delimitation Item", VR: "NONE", VM: "1"},
}

// UIDDictionary maps a UID string to its registry entry.
var UIDDictionary = map[string]*UIDEntry{
	"1.2.840.10008.1.2":           {UID: "1.2.840.10008.1.2", Type: "Transfer Syntax", NameHuman: "Implicit VR Little Endian"},
	"1.2.840.10008.1.2.1":         {UID: "1.2.840.10008.1.2.1", Type: "Transfer Syntax", NameHuman: "Explicit VR Little Endian"},
	"1.2.840.10008.1.2.1.99":      {UID: "1.2.840.10008.1.2.1.99", Type: "Transfer Syntax", NameHuman: "Deflated Explicit VR Little Endian"},
	"1.2.840.10008.1.2.2":         {UID: "1.2.840.10008.1.2.2", Type: "Transfer Syntax", NameHuman: "Explicit VR Big Endian (Retired)"},
	"1.2.840.10008.1.2.4.50":      {UID: "1.2.840.10008.1.2.4.50", Type: "Transfer Syntax", NameHuman: "JPEG Baseline (Process 1)"},
	"1.2.840.10008.1.2.4.51":      {UID: "1.2.840.10008.1.2.4.51", Type: "Transfer Syntax", NameHuman: "JPEG Extended (Process 2 & 4)"},
	"1.2.840.10008.1.2.4.57":      {UID: "1.2.840.10008.1.2.4.57", Type: "Transfer Syntax", NameHuman: "JPEG Lossless, Non-Hierarchical (Process 14)"},
	"1.2.840.10008.1.2.4.70":      {UID: "1.2.840.10008.1.2.4.70", Type: "Transfer Syntax", NameHuman: "JPEG Lossless, Non-Hierarchical, First-Order Prediction (Process 14 [Selection Value 1])"},
	"1.2.840.10008.1.2.4.80":      {UID: "1.2.840.10008.1.2.4.80", Type: "Transfer Syntax", NameHuman: "JPEG-LS Lossless Image Compression"},
	"1.2.840.10008.1.2.4.81":      {UID: "1.2.840.10008.1.2.4.81", Type: "Transfer Syntax", NameHuman: "JPEG-LS Lossy (Near-Lossless) Image Compression"},
	"1.2.840.10008.1.2.4.90":      {UID: "1.2.840.10008.1.2.4.90", Type: "Transfer Syntax", NameHuman: "JPEG 2000 Image Compression (Lossless Only)"},
	"1.2.840.10008.1.2.4.91":      {UID: "1.2.840.10008.1.2.4.91", Type: "Transfer Syntax", NameHuman: "JPEG 2000 Image Compression"},
	"1.2.840.10008.1.2.5":         {UID: "1.2.840.10008.1.2.5", Type: "Transfer Syntax", NameHuman: "RLE Lossless"},
	"1.2.840.10008.5.1.4.1.1.1":   {UID: "1.2.840.10008.5.1.4.1.1.1", Type: "SOP Class", NameHuman: "Computed Radiography Image Storage"},
	"1.2.840.10008.5.1.4.1.1.1.1": {UID: "1.2.840.10008.5.1.4.1.1.1.1", Type: "SOP Class", NameHuman: "Digital X-Ray Image Storage - For Presentation"},
	"1.2.840.10008.5.1.4.1.1.2":   {UID: "1.2.840.10008.5.1.4.1.1.2", Type: "SOP Class", NameHuman: "CT Image Storage"},
	"1.2.840.10008.5.1.4.1.1.2.1": {UID: "1.2.840.10008.5.1.4.1.1.2.1", Type: "SOP Class", NameHuman: "Enhanced CT Image Storage"},
	"1.2.840.10008.5.1.4.1.1.4":   {UID: "1.2.840.10008.5.1.4.1.1.4", Type: "SOP Class", NameHuman: "MR Image Storage"},
	"1.2.840.10008.5.1.4.1.1.4.1": {UID: "1.2.840.10008.5.1.4.1.1.4.1", Type: "SOP Class", NameHuman: "Enhanced MR Image Storage"},
	"1.2.840.10008.5.1.4.1.1.6.1": {UID: "1.2.840.10008.5.1.4.1.1.6.1", Type: "SOP Class", NameHuman: "Ultrasound Image Storage"},
	"1.2.840.10008.5.1.4.1.1.7":   {UID: "1.2.840.10008.5.1.4.1.1.7", Type: "SOP Class", NameHuman: "Secondary Capture Image Storage"},
	"1.2.840.10008.5.1.4.1.1.20":  {UID: "1.2.840.10008.5.1.4.1.1.20", Type: "SOP Class", NameHuman: "Nuclear Medicine Image Storage"},
	"1.2.840.10008.5.1.4.1.1.66":  {UID: "1.2.840.10008.5.1.4.1.1.66", Type: "SOP Class", NameHuman: "Raw Data Storage"},
	"1.2.840.10008.5.1.4.1.1.128": {UID: "1.2.840.10008.5.1.4.1.1.128", Type: "SOP Class", NameHuman: "Positron Emission Tomography Image Storage"},
}
