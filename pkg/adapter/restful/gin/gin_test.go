// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rentautos/rentaweb/internal/test/dbcontainer"
	"github.com/rentautos/rentaweb/pkg/adapter/db/postgres"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin/routes"
	"github.com/rentautos/rentaweb/pkg/core/model"
	"github.com/rentautos/rentaweb/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool
	Gin  *gin.Engine
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	sql, err := os.ReadFile("testdata/schema.sql")
	igts.Require().NoError(err, "failed to read schema.sql file")
	err = igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			_, err := c.Exec(ctx, string(sql))
			return err
		},
	)
	igts.Require().NoError(err, "failed to create schema contents")

	igts.Gin = gin.New(gin.Logger(), gin.Recovery())
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	routes.Register(igts.Gin, igts.Pool)
}

func jsonBody(v any) io.Reader {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bytes.NewReader(b)
}

func (igts *IntegrationGinTestSuite) sendReqRecvResp(
	w *httptest.ResponseRecorder, req *http.Request, res any,
) {
	req.Header.Add("Content-Type", "application/json")
	igts.Gin.ServeHTTP(w, req)
	b := w.Body.Bytes()
	igts.NoError(json.Unmarshal(b, res), "body is not json")
}

func (igts *IntegrationGinTestSuite) request(
	method, path string, body io.Reader, res any,
) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, "/api/rentaweb/v1"+path, body)
	igts.Require().NoError(err, "cannot create %s request", method)
	igts.sendReqRecvResp(w, req, res)
	return w
}

func (igts *IntegrationGinTestSuite) createCar(price float64) *model.Car {
	res := &model.Car{}
	w := igts.request(http.MethodPost, "/cars", jsonBody(map[string]any{
		"make":             "Toyota",
		"model":            "Corolla",
		"year":             2019,
		"mileage":          52000,
		"color":            "white",
		"air_conditioning": true,
		"passengers":       5,
		"gearbox":          "manual",
		"price":            price,
	}), res)
	igts.Require().Equal(201, w.Code, "failed to create a car")
	return res
}

func (igts *IntegrationGinTestSuite) createClient(email string) *model.Client {
	res := &model.Client{}
	w := igts.request(http.MethodPost, "/clients", jsonBody(map[string]any{
		"first_name":      "Ana",
		"last_name":       "Gomez",
		"document_type":   "passport",
		"document_number": "X1234567",
		"nationality":     "AR",
		"address":         "Av. Siempreviva 742",
		"phone":           "+54-11-5555-0000",
		"email":           email,
		"birth_date":      "1990-06-15T00:00:00Z",
	}), res)
	igts.Require().Equal(201, w.Code, "failed to create a client")
	return res
}

func (igts *IntegrationGinTestSuite) getCar(cid uuid.UUID) *model.Car {
	res := &model.Car{}
	w := igts.request(http.MethodGet, "/cars/"+cid.String(), nil, res)
	igts.Require().Equal(200, w.Code, "failed to fetch a car")
	return res
}

func (igts *IntegrationGinTestSuite) getClient(clid uuid.UUID) *model.Client {
	res := &model.Client{}
	w := igts.request(http.MethodGet, "/clients/"+clid.String(), nil, res)
	igts.Require().Equal(200, w.Code, "failed to fetch a client")
	return res
}

func (igts *IntegrationGinTestSuite) TestCarLifecycle() {
	car := igts.createCar(75)
	igts.Equal("Toyota", car.Make)
	igts.False(car.IsRented)

	res := &model.Car{}
	w := igts.request(
		http.MethodPatch, "/cars/"+car.ID.String(),
		jsonBody(map[string]any{"color": "red", "price": 90}),
		res,
	)
	igts.Equal(200, w.Code)
	igts.Equal("red", res.Color)
	igts.Equal(90.0, res.Price)
	igts.Equal("Toyota", res.Make, "unsupplied fields must stay")

	w = igts.request(
		http.MethodDelete, "/cars/"+car.ID.String(), nil, res,
	)
	igts.Equal(200, w.Code)
	igts.True(res.IsDeleted)

	got := igts.getCar(car.ID)
	igts.True(got.IsDeleted, "deleted cars remain resolvable by id")
}

func (igts *IntegrationGinTestSuite) TestCarBadRequest() {
	res := &struct {
		Detail  string
		Gearbox []string
		Price   []string
	}{}
	w := igts.request(http.MethodPost, "/cars", jsonBody(map[string]any{
		"make":             "Toyota",
		"model":            "Corolla",
		"year":             2019,
		"color":            "white",
		"air_conditioning": true,
		"passengers":       5,
		"gearbox":          "semi-automatic",
		"price":            75,
	}), res)
	igts.Equal(400, w.Code)
	igts.Require().Len(res.Gearbox, 1)
	igts.Contains(res.Gearbox[0], "failed on the 'oneof' tag")

	w = igts.request(
		http.MethodGet, "/cars/not-a-uuid", nil,
		&struct{ Cid []string }{},
	)
	igts.Equal(400, w.Code)
}

func (igts *IntegrationGinTestSuite) TestClientDuplicateEmail() {
	igts.createClient("dup@example.com")

	res := &struct{ Detail string }{}
	w := igts.request(http.MethodPost, "/clients", jsonBody(map[string]any{
		"first_name":      "Eva",
		"last_name":       "Lopez",
		"document_type":   "dni",
		"document_number": "Y7654321",
		"nationality":     "AR",
		"address":         "Calle Falsa 123",
		"phone":           "+54-11-5555-1111",
		"email":           "dup@example.com",
		"birth_date":      "1985-01-20T00:00:00Z",
	}), res)
	igts.Equal(400, w.Code)
	igts.Equal("email already registered", res.Detail)
}

func (igts *IntegrationGinTestSuite) TestTransactionNotFound() {
	res := &struct{ Detail string }{}
	w := igts.request(
		http.MethodGet, "/transactions/"+uuid.New().String(), nil, res,
	)
	igts.Equal(404, w.Code)
	igts.Equal("expected one row, but got 0", res.Detail, "wrong detail")
}

func (igts *IntegrationGinTestSuite) TestTransactionBadRequest() {
	for _, tc := range []struct {
		name  string
		body  map[string]any
		field string
	}{
		{
			name:  "missing carId",
			body:  map[string]any{},
			field: "CarID",
		},
		{
			name: "carId not uuid",
			body: map[string]any{
				"carId":       "not-a-uuid",
				"clientId":    uuid.New().String(),
				"start_date":  "2024-03-05T10:00:00Z",
				"finish_date": "2024-03-11T10:00:00Z",
			},
			field: "CarID",
		},
	} {
		igts.Run(tc.name, func() {
			res := map[string][]string{}
			w := igts.request(
				http.MethodPost, "/transactions", jsonBody(tc.body), &res,
			)
			igts.Equal(400, w.Code)
			igts.NotEmpty(res[tc.field], "expected a %s error", tc.field)
		})
	}
}

func (igts *IntegrationGinTestSuite) TestRentalScenario() {
	car := igts.createCar(75)
	client := igts.createClient("scenario@example.com")

	t := &model.Transaction{}
	w := igts.request(
		http.MethodPost, "/transactions",
		jsonBody(map[string]any{
			"carId":       car.ID.String(),
			"clientId":    client.ID.String(),
			"start_date":  "2024-03-05T10:00:00Z",
			"finish_date": "2024-03-11T10:00:00Z",
		}),
		t,
	)
	igts.Require().Equal(201, w.Code)
	igts.Equal(75.0, t.PricePerDay)
	igts.Equal(450.0, t.TotalPrice, "75 per day over 6 days")
	igts.True(t.IsActive)
	igts.True(igts.getCar(car.ID).IsRented)
	igts.True(igts.getClient(client.ID).IsRenting)

	// the car is busy now, a second booking must be rejected
	client2 := igts.createClient("scenario2@example.com")
	errRes := &struct{ Detail string }{}
	w = igts.request(
		http.MethodPost, "/transactions",
		jsonBody(map[string]any{
			"carId":       car.ID.String(),
			"clientId":    client2.ID.String(),
			"start_date":  "2024-03-06T10:00:00Z",
			"finish_date": "2024-03-08T10:00:00Z",
		}),
		errRes,
	)
	igts.Equal(400, w.Code)
	igts.Contains(errRes.Detail, "not a valid car")

	// a too short range must be rejected as well
	car2 := igts.createCar(80)
	w = igts.request(
		http.MethodPost, "/transactions",
		jsonBody(map[string]any{
			"carId":       car2.ID.String(),
			"clientId":    client2.ID.String(),
			"start_date":  "2024-03-05T10:00:00Z",
			"finish_date": "2024-03-05T22:00:00Z",
		}),
		errRes,
	)
	igts.Equal(400, w.Code)

	fin := &model.Transaction{}
	w = igts.request(
		http.MethodPatch, "/transactions/"+t.ID.String(), nil, fin,
	)
	igts.Require().Equal(200, w.Code)
	igts.False(fin.IsActive)
	igts.False(igts.getCar(car.ID).IsRented, "finish must release the car")
	igts.False(
		igts.getClient(client.ID).IsRenting,
		"finish must release the client",
	)

	w = igts.request(
		http.MethodPatch, "/transactions/"+t.ID.String(), nil, errRes,
	)
	igts.Equal(400, w.Code)
	igts.Contains(errRes.Detail, "already finished")
}

func (igts *IntegrationGinTestSuite) TestRentalUpdate() {
	car := igts.createCar(75)
	client := igts.createClient("update@example.com")

	t := &model.Transaction{}
	w := igts.request(
		http.MethodPost, "/transactions",
		jsonBody(map[string]any{
			"carId":       car.ID.String(),
			"clientId":    client.ID.String(),
			"start_date":  "2024-03-05T10:00:00Z",
			"finish_date": "2024-03-07T10:00:00Z",
		}),
		t,
	)
	igts.Require().Equal(201, w.Code)

	// raise the car price; the booked transaction must keep its snapshot
	res := &model.Car{}
	w = igts.request(
		http.MethodPatch, "/cars/"+car.ID.String(),
		jsonBody(map[string]any{"price": 100}), res,
	)
	igts.Require().Equal(200, w.Code)

	got := &model.RentalDetails{}
	w = igts.request(
		http.MethodGet, "/transactions/"+t.ID.String(), nil, got,
	)
	igts.Require().Equal(200, w.Code)
	igts.Equal(75.0, got.PricePerDay, "booked price must stay frozen")
	igts.Equal(car.ID, got.Car.ID, "details must expand the booked car")
	igts.Equal(client.ID, got.Client.ID)

	// rebooking to another car re-snapshots from that car
	car2 := igts.createCar(90)
	u := &model.Transaction{}
	w = igts.request(
		http.MethodPut, "/transactions/"+t.ID.String(),
		jsonBody(map[string]any{
			"carId":       car2.ID.String(),
			"clientId":    client.ID.String(),
			"start_date":  "2024-03-05T10:00:00Z",
			"finish_date": "2024-03-07T10:00:00Z",
		}),
		u,
	)
	igts.Require().Equal(200, w.Code)
	igts.Equal(90.0, u.PricePerDay)
	igts.Equal(180.0, u.TotalPrice)
	igts.False(
		igts.getCar(car.ID).IsRented,
		"reassignment must release the previous car",
	)
	igts.True(igts.getCar(car2.ID).IsRented)

	fin := &model.Transaction{}
	w = igts.request(
		http.MethodPatch, "/transactions/"+t.ID.String(), nil, fin,
	)
	igts.Require().Equal(200, w.Code)
}

func (igts *IntegrationGinTestSuite) TestTransactionListing() {
	car := igts.createCar(60)
	client := igts.createClient("listing@example.com")

	t1 := &model.Transaction{}
	w := igts.request(
		http.MethodPost, "/transactions",
		jsonBody(map[string]any{
			"carId":       car.ID.String(),
			"clientId":    client.ID.String(),
			"start_date":  "2024-03-05T10:00:00Z",
			"finish_date": "2024-03-07T10:00:00Z",
		}),
		t1,
	)
	igts.Require().Equal(201, w.Code)
	w = igts.request(
		http.MethodPatch, "/transactions/"+t1.ID.String(), nil,
		&model.Transaction{},
	)
	igts.Require().Equal(200, w.Code)

	t2 := &model.Transaction{}
	w = igts.request(
		http.MethodPost, "/transactions",
		jsonBody(map[string]any{
			"carId":       car.ID.String(),
			"clientId":    client.ID.String(),
			"start_date":  "2024-03-10T10:00:00Z",
			"finish_date": "2024-03-12T10:00:00Z",
		}),
		t2,
	)
	igts.Require().Equal(201, w.Code)

	var all []model.RentalDetails
	w = igts.request(http.MethodGet, "/transactions", nil, &all)
	igts.Require().Equal(200, w.Code)
	igts.Require().GreaterOrEqual(len(all), 2)
	igts.Equal(t2.ID, all[0].ID, "active transactions must come first")

	var active []model.RentalDetails
	w = igts.request(
		http.MethodGet, "/transactions?active=true", nil, &active,
	)
	igts.Require().Equal(200, w.Code)
	for _, d := range active {
		igts.True(d.IsActive, "active filter must exclude finished ones")
	}

	w = igts.request(
		http.MethodGet, "/transactions?active=nope", nil,
		&map[string][]string{},
	)
	igts.Equal(400, w.Code)
}
