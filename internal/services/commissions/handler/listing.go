package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"crm-commissions/internal/services/commissions/repository"
	proto "crm-commissions/proto/protogen/commissions"
)

func pageOf(page, limit int32) repository.Page {
	return repository.Page{Page: int(page), Limit: int(limit)}
}

func (c *CommissionHandler) GetContestations(ctx context.Context, req *proto.GetContestationsRequest) (*proto.GetContestationsResponse, error) {
	if req.OrganisationId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Organisation ID is required")
	}

	rows, total, err := c.repo.ListContestations(ctx, repository.ContestationFilter{
		OrganisationID: req.OrganisationId,
		CommissionID:   req.CommissionId,
		BordereauID:    req.BordereauId,
		ApporteurID:    req.ApporteurId,
		Statut:         req.Statut,
	}, pageOf(req.Page, req.Limit))
	if err != nil {
		return nil, err
	}

	resp := &proto.GetContestationsResponse{Total: int32(total)}
	for _, row := range rows {
		resp.Contestations = append(resp.Contestations, contestationToProto(row))
	}
	return resp, nil
}

func (c *CommissionHandler) GetRecurrences(ctx context.Context, req *proto.GetRecurrencesRequest) (*proto.GetRecurrencesResponse, error) {
	if req.OrganisationId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Organisation ID is required")
	}
	return c.listRecurrences(ctx, repository.RecurrenceFilter{
		OrganisationID: req.OrganisationId,
		ApporteurID:    req.ApporteurId,
		Statut:         req.Statut,
		Periode:        req.Periode,
	}, pageOf(req.Page, req.Limit))
}

func (c *CommissionHandler) GetRecurrencesByContrat(ctx context.Context, req *proto.GetRecurrencesByContratRequest) (*proto.GetRecurrencesResponse, error) {
	if req.OrganisationId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Organisation ID is required")
	}
	if req.ContratId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Contrat ID is required")
	}
	return c.listRecurrences(ctx, repository.RecurrenceFilter{
		OrganisationID: req.OrganisationId,
		ContratID:      req.ContratId,
	}, pageOf(req.Page, req.Limit))
}

func (c *CommissionHandler) listRecurrences(ctx context.Context, filter repository.RecurrenceFilter, page repository.Page) (*proto.GetRecurrencesResponse, error) {
	rows, total, err := c.repo.ListRecurrences(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	resp := &proto.GetRecurrencesResponse{Total: int32(total)}
	for _, row := range rows {
		resp.Recurrences = append(resp.Recurrences, recurrenceToProto(repository.RecurrenceToEngine(row)))
	}
	return resp, nil
}

// GetReportsNegatifs lists carry-forwards, newest origin period first.
func (c *CommissionHandler) GetReportsNegatifs(ctx context.Context, req *proto.GetReportsNegatifsRequest) (*proto.GetReportsNegatifsResponse, error) {
	if req.OrganisationId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Organisation ID is required")
	}

	rows, total, err := c.repo.ListReportsNegatifs(ctx, repository.ReportFilter{
		OrganisationID: req.OrganisationId,
		ApporteurID:    req.ApporteurId,
		Statut:         req.Statut,
	}, pageOf(req.Page, req.Limit))
	if err != nil {
		return nil, err
	}

	resp := &proto.GetReportsNegatifsResponse{Total: int32(total)}
	for _, row := range rows {
		resp.Reports = append(resp.Reports, reportToProto(row))
	}
	return resp, nil
}
