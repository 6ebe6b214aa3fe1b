// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: catalog/v1/catalog.proto

package catalogv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CatalogService_RegisterFile_FullMethodName     = "/catalog.v1.CatalogService/RegisterFile"
	CatalogService_StartConversion_FullMethodName  = "/catalog.v1.CatalogService/StartConversion"
	CatalogService_GetConversionJob_FullMethodName = "/catalog.v1.CatalogService/GetConversionJob"
	CatalogService_CancelConversion_FullMethodName = "/catalog.v1.CatalogService/CancelConversion"
	CatalogService_ListRecords_FullMethodName      = "/catalog.v1.CatalogService/ListRecords"
	CatalogService_ValidateRecord_FullMethodName   = "/catalog.v1.CatalogService/ValidateRecord"
	CatalogService_ExportRecords_FullMethodName    = "/catalog.v1.CatalogService/ExportRecords"
)

// CatalogServiceClient is the client API for CatalogService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CatalogService converts uploaded product-catalog documents into
// structured records and exports them.
type CatalogServiceClient interface {
	// RegisterFile records an uploaded document so jobs can reference it.
	RegisterFile(ctx context.Context, in *RegisterFileRequest, opts ...grpc.CallOption) (*RegisterFileResponse, error)
	// StartConversion creates a job over registered files and starts it
	// asynchronously.
	StartConversion(ctx context.Context, in *StartConversionRequest, opts ...grpc.CallOption) (*StartConversionResponse, error)
	// GetConversionJob reports a job's status and progress.
	GetConversionJob(ctx context.Context, in *GetConversionJobRequest, opts ...grpc.CallOption) (*GetConversionJobResponse, error)
	// CancelConversion stops a running job. Already-processed files keep
	// their records.
	CancelConversion(ctx context.Context, in *CancelConversionRequest, opts ...grpc.CallOption) (*CancelConversionResponse, error)
	// ListRecords pages through extracted records.
	ListRecords(ctx context.Context, in *ListRecordsRequest, opts ...grpc.CallOption) (*ListRecordsResponse, error)
	// ValidateRecord marks a record human-confirmed, optionally applying
	// field corrections first.
	ValidateRecord(ctx context.Context, in *ValidateRecordRequest, opts ...grpc.CallOption) (*ValidateRecordResponse, error)
	// ExportRecords renders matching records as CSV or XLSX bytes.
	ExportRecords(ctx context.Context, in *ExportRecordsRequest, opts ...grpc.CallOption) (*ExportRecordsResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc}
}

func (c *catalogServiceClient) RegisterFile(ctx context.Context, in *RegisterFileRequest, opts ...grpc.CallOption) (*RegisterFileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterFileResponse)
	err := c.cc.Invoke(ctx, CatalogService_RegisterFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) StartConversion(ctx context.Context, in *StartConversionRequest, opts ...grpc.CallOption) (*StartConversionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartConversionResponse)
	err := c.cc.Invoke(ctx, CatalogService_StartConversion_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) GetConversionJob(ctx context.Context, in *GetConversionJobRequest, opts ...grpc.CallOption) (*GetConversionJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetConversionJobResponse)
	err := c.cc.Invoke(ctx, CatalogService_GetConversionJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) CancelConversion(ctx context.Context, in *CancelConversionRequest, opts ...grpc.CallOption) (*CancelConversionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelConversionResponse)
	err := c.cc.Invoke(ctx, CatalogService_CancelConversion_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ListRecords(ctx context.Context, in *ListRecordsRequest, opts ...grpc.CallOption) (*ListRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRecordsResponse)
	err := c.cc.Invoke(ctx, CatalogService_ListRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ValidateRecord(ctx context.Context, in *ValidateRecordRequest, opts ...grpc.CallOption) (*ValidateRecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ValidateRecordResponse)
	err := c.cc.Invoke(ctx, CatalogService_ValidateRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ExportRecords(ctx context.Context, in *ExportRecordsRequest, opts ...grpc.CallOption) (*ExportRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportRecordsResponse)
	err := c.cc.Invoke(ctx, CatalogService_ExportRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CatalogServiceServer is the server API for CatalogService service.
// All implementations must embed UnimplementedCatalogServiceServer
// for forward compatibility.
//
// CatalogService converts uploaded product-catalog documents into
// structured records and exports them.
type CatalogServiceServer interface {
	// RegisterFile records an uploaded document so jobs can reference it.
	RegisterFile(context.Context, *RegisterFileRequest) (*RegisterFileResponse, error)
	// StartConversion creates a job over registered files and starts it
	// asynchronously.
	StartConversion(context.Context, *StartConversionRequest) (*StartConversionResponse, error)
	// GetConversionJob reports a job's status and progress.
	GetConversionJob(context.Context, *GetConversionJobRequest) (*GetConversionJobResponse, error)
	// CancelConversion stops a running job. Already-processed files keep
	// their records.
	CancelConversion(context.Context, *CancelConversionRequest) (*CancelConversionResponse, error)
	// ListRecords pages through extracted records.
	ListRecords(context.Context, *ListRecordsRequest) (*ListRecordsResponse, error)
	// ValidateRecord marks a record human-confirmed, optionally applying
	// field corrections first.
	ValidateRecord(context.Context, *ValidateRecordRequest) (*ValidateRecordResponse, error)
	// ExportRecords renders matching records as CSV or XLSX bytes.
	ExportRecords(context.Context, *ExportRecordsRequest) (*ExportRecordsResponse, error)
	mustEmbedUnimplementedCatalogServiceServer()
}

// UnimplementedCatalogServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) RegisterFile(context.Context, *RegisterFileRequest) (*RegisterFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterFile not implemented")
}
func (UnimplementedCatalogServiceServer) StartConversion(context.Context, *StartConversionRequest) (*StartConversionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartConversion not implemented")
}
func (UnimplementedCatalogServiceServer) GetConversionJob(context.Context, *GetConversionJobRequest) (*GetConversionJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetConversionJob not implemented")
}
func (UnimplementedCatalogServiceServer) CancelConversion(context.Context, *CancelConversionRequest) (*CancelConversionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelConversion not implemented")
}
func (UnimplementedCatalogServiceServer) ListRecords(context.Context, *ListRecordsRequest) (*ListRecordsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRecords not implemented")
}
func (UnimplementedCatalogServiceServer) ValidateRecord(context.Context, *ValidateRecordRequest) (*ValidateRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateRecord not implemented")
}
func (UnimplementedCatalogServiceServer) ExportRecords(context.Context, *ExportRecordsRequest) (*ExportRecordsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportRecords not implemented")
}
func (UnimplementedCatalogServiceServer) mustEmbedUnimplementedCatalogServiceServer() {}
func (UnimplementedCatalogServiceServer) testEmbeddedByValue()                        {}

// UnsafeCatalogServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CatalogServiceServer will
// result in compilation errors.
type UnsafeCatalogServiceServer interface {
	mustEmbedUnimplementedCatalogServiceServer()
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	// If the following call pancis, it indicates UnimplementedCatalogServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

func _CatalogService_RegisterFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).RegisterFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_RegisterFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).RegisterFile(ctx, req.(*RegisterFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_StartConversion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartConversionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).StartConversion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_StartConversion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).StartConversion(ctx, req.(*StartConversionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_GetConversionJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetConversionJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetConversionJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_GetConversionJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).GetConversionJob(ctx, req.(*GetConversionJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_CancelConversion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelConversionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).CancelConversion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_CancelConversion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).CancelConversion(ctx, req.(*CancelConversionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ListRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ListRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).ListRecords(ctx, req.(*ListRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ValidateRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ValidateRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ValidateRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).ValidateRecord(ctx, req.(*ValidateRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ExportRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ExportRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ExportRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).ExportRecords(ctx, req.(*ExportRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CatalogService_ServiceDesc is the grpc.ServiceDesc for CatalogService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.v1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterFile",
			Handler:    _CatalogService_RegisterFile_Handler,
		},
		{
			MethodName: "StartConversion",
			Handler:    _CatalogService_StartConversion_Handler,
		},
		{
			MethodName: "GetConversionJob",
			Handler:    _CatalogService_GetConversionJob_Handler,
		},
		{
			MethodName: "CancelConversion",
			Handler:    _CatalogService_CancelConversion_Handler,
		},
		{
			MethodName: "ListRecords",
			Handler:    _CatalogService_ListRecords_Handler,
		},
		{
			MethodName: "ValidateRecord",
			Handler:    _CatalogService_ValidateRecord_Handler,
		},
		{
			MethodName: "ExportRecords",
			Handler:    _CatalogService_ExportRecords_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}
