// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docpipe/v1/docpipe.proto

package docpipev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Document struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TaxYearId            string                 `protobuf:"bytes,2,opt,name=tax_year_id,json=taxYearId,proto3" json:"tax_year_id,omitempty"`
	DocType              string                 `protobuf:"bytes,3,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	OwnerName            string                 `protobuf:"bytes,4,opt,name=owner_name,json=ownerName,proto3" json:"owner_name,omitempty"`
	FilePath             string                 `protobuf:"bytes,5,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	FileName             string                 `protobuf:"bytes,6,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	ExtractionStatus     string                 `protobuf:"bytes,7,opt,name=extraction_status,json=extractionStatus,proto3" json:"extraction_status,omitempty"`
	ExtractionConfidence float32                `protobuf:"fixed32,8,opt,name=extraction_confidence,json=extractionConfidence,proto3" json:"extraction_confidence,omitempty"`
	// extracted_data is the raw JSON envelope, including the "_metadata"
	// mismatch report.
	ExtractedData   string `protobuf:"bytes,9,opt,name=extracted_data,json=extractedData,proto3" json:"extracted_data,omitempty"`
	ReviewStatus    string `protobuf:"bytes,10,opt,name=review_status,json=reviewStatus,proto3" json:"review_status,omitempty"`
	RejectionReason string `protobuf:"bytes,11,opt,name=rejection_reason,json=rejectionReason,proto3" json:"rejection_reason,omitempty"`
	UploadedAt      string `protobuf:"bytes,12,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	UpdatedAt       string `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetTaxYearId() string {
	if x != nil {
		return x.TaxYearId
	}
	return ""
}

func (x *Document) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *Document) GetOwnerName() string {
	if x != nil {
		return x.OwnerName
	}
	return ""
}

func (x *Document) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *Document) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Document) GetExtractionStatus() string {
	if x != nil {
		return x.ExtractionStatus
	}
	return ""
}

func (x *Document) GetExtractionConfidence() float32 {
	if x != nil {
		return x.ExtractionConfidence
	}
	return 0
}

func (x *Document) GetExtractedData() string {
	if x != nil {
		return x.ExtractedData
	}
	return ""
}

func (x *Document) GetReviewStatus() string {
	if x != nil {
		return x.ReviewStatus
	}
	return ""
}

func (x *Document) GetRejectionReason() string {
	if x != nil {
		return x.RejectionReason
	}
	return ""
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ConfirmUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaxYearId     string                 `protobuf:"bytes,1,opt,name=tax_year_id,json=taxYearId,proto3" json:"tax_year_id,omitempty"`
	DocType       string                 `protobuf:"bytes,2,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	OwnerName     string                 `protobuf:"bytes,3,opt,name=owner_name,json=ownerName,proto3" json:"owner_name,omitempty"`
	FilePath      string                 `protobuf:"bytes,4,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	FileName      string                 `protobuf:"bytes,5,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmUploadRequest) Reset() {
	*x = ConfirmUploadRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmUploadRequest) ProtoMessage() {}

func (x *ConfirmUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmUploadRequest.ProtoReflect.Descriptor instead.
func (*ConfirmUploadRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{1}
}

func (x *ConfirmUploadRequest) GetTaxYearId() string {
	if x != nil {
		return x.TaxYearId
	}
	return ""
}

func (x *ConfirmUploadRequest) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *ConfirmUploadRequest) GetOwnerName() string {
	if x != nil {
		return x.OwnerName
	}
	return ""
}

func (x *ConfirmUploadRequest) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *ConfirmUploadRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

type ConfirmUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmUploadResponse) Reset() {
	*x = ConfirmUploadResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmUploadResponse) ProtoMessage() {}

func (x *ConfirmUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmUploadResponse.ProtoReflect.Descriptor instead.
func (*ConfirmUploadResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{2}
}

func (x *ConfirmUploadResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{3}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type RescanDocumentRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// force re-enqueues even when the previous run already succeeded.
	Force         bool `protobuf:"varint,2,opt,name=force,proto3" json:"force,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RescanDocumentRequest) Reset() {
	*x = RescanDocumentRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RescanDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RescanDocumentRequest) ProtoMessage() {}

func (x *RescanDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RescanDocumentRequest.ProtoReflect.Descriptor instead.
func (*RescanDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{5}
}

func (x *RescanDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *RescanDocumentRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type RescanDocumentResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	DocumentId       string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ExtractionStatus string                 `protobuf:"bytes,2,opt,name=extraction_status,json=extractionStatus,proto3" json:"extraction_status,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *RescanDocumentResponse) Reset() {
	*x = RescanDocumentResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RescanDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RescanDocumentResponse) ProtoMessage() {}

func (x *RescanDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RescanDocumentResponse.ProtoReflect.Descriptor instead.
func (*RescanDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{6}
}

func (x *RescanDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *RescanDocumentResponse) GetExtractionStatus() string {
	if x != nil {
		return x.ExtractionStatus
	}
	return ""
}

type ApproveDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveDocumentRequest) Reset() {
	*x = ApproveDocumentRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveDocumentRequest) ProtoMessage() {}

func (x *ApproveDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveDocumentRequest.ProtoReflect.Descriptor instead.
func (*ApproveDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{7}
}

func (x *ApproveDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ApproveDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveDocumentResponse) Reset() {
	*x = ApproveDocumentResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveDocumentResponse) ProtoMessage() {}

func (x *ApproveDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveDocumentResponse.ProtoReflect.Descriptor instead.
func (*ApproveDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{8}
}

func (x *ApproveDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type RejectDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectDocumentRequest) Reset() {
	*x = RejectDocumentRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectDocumentRequest) ProtoMessage() {}

func (x *RejectDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectDocumentRequest.ProtoReflect.Descriptor instead.
func (*RejectDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{9}
}

func (x *RejectDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *RejectDocumentRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type RejectDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectDocumentResponse) Reset() {
	*x = RejectDocumentResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectDocumentResponse) ProtoMessage() {}

func (x *RejectDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectDocumentResponse.ProtoReflect.Descriptor instead.
func (*RejectDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{10}
}

func (x *RejectDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ExportReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaxYearId     string                 `protobuf:"bytes,1,opt,name=tax_year_id,json=taxYearId,proto3" json:"tax_year_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReviewRequest) Reset() {
	*x = ExportReviewRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReviewRequest) ProtoMessage() {}

func (x *ExportReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReviewRequest.ProtoReflect.Descriptor instead.
func (*ExportReviewRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{11}
}

func (x *ExportReviewRequest) GetTaxYearId() string {
	if x != nil {
		return x.TaxYearId
	}
	return ""
}

type ExportReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReviewResponse) Reset() {
	*x = ExportReviewResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReviewResponse) ProtoMessage() {}

func (x *ExportReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReviewResponse.ProtoReflect.Descriptor instead.
func (*ExportReviewResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{12}
}

func (x *ExportReviewResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_docpipe_v1_docpipe_proto protoreflect.FileDescriptor

const file_docpipe_v1_docpipe_proto_rawDesc = "" +
	"\n" +
	"\x18docpipe/v1/docpipe.proto\x12\n" +
	"docpipe.v1\"\xc7\x03\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1e\n" +
	"\vtax_year_id\x18\x02 \x01(\tR\ttaxYearId\x12\x19\n" +
	"\bdoc_type\x18\x03 \x01(\tR\adocType\x12\x1d\n" +
	"\n" +
	"owner_name\x18\x04 \x01(\tR\townerName\x12\x1b\n" +
	"\tfile_path\x18\x05 \x01(\tR\bfilePath\x12\x1b\n" +
	"\tfile_name\x18\x06 \x01(\tR\bfileName\x12+\n" +
	"\x11extraction_status\x18\a \x01(\tR\x10extractionStatus\x123\n" +
	"\x15extraction_confidence\x18\b \x01(\x02R\x14extractionConfidence\x12%\n" +
	"\x0eextracted_data\x18\t \x01(\tR\rextractedData\x12#\n" +
	"\rreview_status\x18\n" +
	" \x01(\tR\freviewStatus\x12)\n" +
	"\x10rejection_reason\x18\v \x01(\tR\x0frejectionReason\x12\x1f\n" +
	"\vuploaded_at\x18\f \x01(\tR\n" +
	"uploadedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\r \x01(\tR\tupdatedAt\"\xaa\x01\n" +
	"\x14ConfirmUploadRequest\x12\x1e\n" +
	"\vtax_year_id\x18\x01 \x01(\tR\ttaxYearId\x12\x19\n" +
	"\bdoc_type\x18\x02 \x01(\tR\adocType\x12\x1d\n" +
	"\n" +
	"owner_name\x18\x03 \x01(\tR\townerName\x12\x1b\n" +
	"\tfile_path\x18\x04 \x01(\tR\bfilePath\x12\x1b\n" +
	"\tfile_name\x18\x05 \x01(\tR\bfileName\"I\n" +
	"\x15ConfirmUploadResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docpipe.v1.DocumentR\bdocument\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"G\n" +
	"\x13GetDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docpipe.v1.DocumentR\bdocument\"N\n" +
	"\x15RescanDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05force\x18\x02 \x01(\bR\x05force\"f\n" +
	"\x16RescanDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12+\n" +
	"\x11extraction_status\x18\x02 \x01(\tR\x10extractionStatus\"9\n" +
	"\x16ApproveDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"K\n" +
	"\x17ApproveDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docpipe.v1.DocumentR\bdocument\"P\n" +
	"\x15RejectDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"J\n" +
	"\x16RejectDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docpipe.v1.DocumentR\bdocument\"5\n" +
	"\x13ExportReviewRequest\x12\x1e\n" +
	"\vtax_year_id\x18\x01 \x01(\tR\ttaxYearId\"*\n" +
	"\x14ExportReviewResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x98\x04\n" +
	"\x0fDocumentService\x12T\n" +
	"\rConfirmUpload\x12 .docpipe.v1.ConfirmUploadRequest\x1a!.docpipe.v1.ConfirmUploadResponse\x12N\n" +
	"\vGetDocument\x12\x1e.docpipe.v1.GetDocumentRequest\x1a\x1f.docpipe.v1.GetDocumentResponse\x12W\n" +
	"\x0eRescanDocument\x12!.docpipe.v1.RescanDocumentRequest\x1a\".docpipe.v1.RescanDocumentResponse\x12Z\n" +
	"\x0fApproveDocument\x12\".docpipe.v1.ApproveDocumentRequest\x1a#.docpipe.v1.ApproveDocumentResponse\x12W\n" +
	"\x0eRejectDocument\x12!.docpipe.v1.RejectDocumentRequest\x1a\".docpipe.v1.RejectDocumentResponse\x12Q\n" +
	"\fExportReview\x12\x1f.docpipe.v1.ExportReviewRequest\x1a .docpipe.v1.ExportReviewResponseB<Z:github.com/taxfolio/docpipe/gen/proto/docpipe/v1;docpipev1b\x06proto3"

var (
	file_docpipe_v1_docpipe_proto_rawDescOnce sync.Once
	file_docpipe_v1_docpipe_proto_rawDescData []byte
)

func file_docpipe_v1_docpipe_proto_rawDescGZIP() []byte {
	file_docpipe_v1_docpipe_proto_rawDescOnce.Do(func() {
		file_docpipe_v1_docpipe_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docpipe_v1_docpipe_proto_rawDesc), len(file_docpipe_v1_docpipe_proto_rawDesc)))
	})
	return file_docpipe_v1_docpipe_proto_rawDescData
}

var file_docpipe_v1_docpipe_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_docpipe_v1_docpipe_proto_goTypes = []any{
	(*Document)(nil),                // 0: docpipe.v1.Document
	(*ConfirmUploadRequest)(nil),    // 1: docpipe.v1.ConfirmUploadRequest
	(*ConfirmUploadResponse)(nil),   // 2: docpipe.v1.ConfirmUploadResponse
	(*GetDocumentRequest)(nil),      // 3: docpipe.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),     // 4: docpipe.v1.GetDocumentResponse
	(*RescanDocumentRequest)(nil),   // 5: docpipe.v1.RescanDocumentRequest
	(*RescanDocumentResponse)(nil),  // 6: docpipe.v1.RescanDocumentResponse
	(*ApproveDocumentRequest)(nil),  // 7: docpipe.v1.ApproveDocumentRequest
	(*ApproveDocumentResponse)(nil), // 8: docpipe.v1.ApproveDocumentResponse
	(*RejectDocumentRequest)(nil),   // 9: docpipe.v1.RejectDocumentRequest
	(*RejectDocumentResponse)(nil),  // 10: docpipe.v1.RejectDocumentResponse
	(*ExportReviewRequest)(nil),     // 11: docpipe.v1.ExportReviewRequest
	(*ExportReviewResponse)(nil),    // 12: docpipe.v1.ExportReviewResponse
}
var file_docpipe_v1_docpipe_proto_depIdxs = []int32{
	0,  // 0: docpipe.v1.ConfirmUploadResponse.document:type_name -> docpipe.v1.Document
	0,  // 1: docpipe.v1.GetDocumentResponse.document:type_name -> docpipe.v1.Document
	0,  // 2: docpipe.v1.ApproveDocumentResponse.document:type_name -> docpipe.v1.Document
	0,  // 3: docpipe.v1.RejectDocumentResponse.document:type_name -> docpipe.v1.Document
	1,  // 4: docpipe.v1.DocumentService.ConfirmUpload:input_type -> docpipe.v1.ConfirmUploadRequest
	3,  // 5: docpipe.v1.DocumentService.GetDocument:input_type -> docpipe.v1.GetDocumentRequest
	5,  // 6: docpipe.v1.DocumentService.RescanDocument:input_type -> docpipe.v1.RescanDocumentRequest
	7,  // 7: docpipe.v1.DocumentService.ApproveDocument:input_type -> docpipe.v1.ApproveDocumentRequest
	9,  // 8: docpipe.v1.DocumentService.RejectDocument:input_type -> docpipe.v1.RejectDocumentRequest
	11, // 9: docpipe.v1.DocumentService.ExportReview:input_type -> docpipe.v1.ExportReviewRequest
	2,  // 10: docpipe.v1.DocumentService.ConfirmUpload:output_type -> docpipe.v1.ConfirmUploadResponse
	4,  // 11: docpipe.v1.DocumentService.GetDocument:output_type -> docpipe.v1.GetDocumentResponse
	6,  // 12: docpipe.v1.DocumentService.RescanDocument:output_type -> docpipe.v1.RescanDocumentResponse
	8,  // 13: docpipe.v1.DocumentService.ApproveDocument:output_type -> docpipe.v1.ApproveDocumentResponse
	10, // 14: docpipe.v1.DocumentService.RejectDocument:output_type -> docpipe.v1.RejectDocumentResponse
	12, // 15: docpipe.v1.DocumentService.ExportReview:output_type -> docpipe.v1.ExportReviewResponse
	10, // [10:16] is the sub-list for method output_type
	4,  // [4:10] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_docpipe_v1_docpipe_proto_init() }
func file_docpipe_v1_docpipe_proto_init() {
	if File_docpipe_v1_docpipe_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docpipe_v1_docpipe_proto_rawDesc), len(file_docpipe_v1_docpipe_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_docpipe_v1_docpipe_proto_goTypes,
		DependencyIndexes: file_docpipe_v1_docpipe_proto_depIdxs,
		MessageInfos:      file_docpipe_v1_docpipe_proto_msgTypes,
	}.Build()
	File_docpipe_v1_docpipe_proto = out.File
	file_docpipe_v1_docpipe_proto_goTypes = nil
	file_docpipe_v1_docpipe_proto_depIdxs = nil
}
