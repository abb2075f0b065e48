package memory

import (
	"context"
	"sort"

	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
)

type requestRepository struct{ b binding }

func (r requestRepository) Create(_ context.Context, request *entity.Request) error {
	var err error
	r.b.write(func(st *state) {
		for _, existing := range st.requests {
			if existing.TrackingNumber == request.TrackingNumber {
				err = domainerrors.NewDatabaseExecuteError(errDuplicateKey, "requests.tracking_number="+request.TrackingNumber)

				return
			}
		}
		request.ID = st.nextID(tableRequests)
		for i := range request.Items {
			request.Items[i].ID = st.nextID(tableLineItems)
		}
		st.requests[request.ID] = cloneRequest(*request)
	})

	return err
}

func (r requestRepository) FindByID(_ context.Context, id int64) (*entity.Request, error) {
	var found *entity.Request
	r.b.read(func(st *state) {
		if req, ok := st.requests[id]; ok {
			cp := cloneRequest(req)
			found = &cp
		}
	})
	if found == nil {
		return nil, domainerrors.ErrRequestNotFound
	}

	return found, nil
}

func (r requestRepository) FindByTrackingNumber(_ context.Context, trackingNumber string) (*entity.Request, error) {
	var found *entity.Request
	r.b.read(func(st *state) {
		for _, req := range st.requests {
			if req.TrackingNumber == trackingNumber {
				cp := cloneRequest(req)
				found = &cp

				return
			}
		}
	})
	if found == nil {
		return nil, domainerrors.ErrRequestNotFound
	}

	return found, nil
}

func (r requestRepository) TrackingNumberExists(_ context.Context, trackingNumber string) (bool, error) {
	var exists bool
	r.b.read(func(st *state) {
		for _, req := range st.requests {
			if req.TrackingNumber == trackingNumber {
				exists = true

				return
			}
		}
	})

	return exists, nil
}

func (r requestRepository) List(_ context.Context, scope entity.RequestScope, filter entity.RequestFilter) ([]*entity.Request, error) {
	var out []*entity.Request
	r.b.read(func(st *state) {
		for _, req := range st.requests {
			if !scope.Matches(&req) {
				continue
			}
			if filter.Status != "" && req.Status != filter.Status {
				continue
			}
			if filter.District != "" && req.District != filter.District {
				continue
			}
			cp := cloneRequest(req)
			out = append(out, &cp)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}

		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r requestRepository) UpdateState(_ context.Context, request *entity.Request) error {
	var ok bool
	r.b.write(func(st *state) {
		var stored entity.Request
		if stored, ok = st.requests[request.ID]; !ok {
			return
		}
		updated := cloneRequest(*request)
		stored.Status = updated.Status
		stored.AssignedToID = updated.AssignedToID
		stored.FulfilledAt = updated.FulfilledAt
		st.requests[request.ID] = stored
	})
	if !ok {
		return domainerrors.ErrRequestNotFound
	}

	return nil
}

func (r requestRepository) CountByDistrictAndStatus(_ context.Context) ([]entity.RequestCountRow, error) {
	type key struct {
		district string
		status   entity.RequestStatus
	}
	counts := map[key]int64{}
	r.b.read(func(st *state) {
		for _, req := range st.requests {
			counts[key{req.District, req.Status}]++
		}
	})

	rows := make([]entity.RequestCountRow, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, entity.RequestCountRow{District: k.district, Status: k.status, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].District != rows[j].District {
			return rows[i].District < rows[j].District
		}

		return rows[i].Status < rows[j].Status
	})

	return rows, nil
}
