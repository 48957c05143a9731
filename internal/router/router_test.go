package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vet-clinic-records/internal/adapters/blobstore"
	"vet-clinic-records/internal/router"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_CustomerLifecycle(t *testing.T) {
	ts := newServer(t)

	id := createCustomer(t, ts.URL, "ana@vet.test", "11111111")

	// 1) Aparece entre los activos
	{
		st, body := doReq(t, ts.URL, "GET", "/api/customers/"+id, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get customer, got %d body=%s", st, string(body))
		}
	}

	// 2) Update: 204 y created_at se conserva
	var before map[string]any
	{
		_, body := doReq(t, ts.URL, "GET", "/api/customers/"+id, "", nil)
		_ = json.Unmarshal(body, &before)

		st, body := doReq(t, ts.URL, "PUT", "/api/customers/"+id, "", customerPayload("ana@vet.test", "11111111", "Ana María"))
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 update, got %d body=%s", st, string(body))
		}

		var after map[string]any
		_, body = doReq(t, ts.URL, "GET", "/api/customers/"+id, "", nil)
		_ = json.Unmarshal(body, &after)
		if after["first_names"] != "Ana María" {
			t.Fatalf("update not applied: %v", after["first_names"])
		}
		if after["created_at"] != before["created_at"] {
			t.Fatalf("created_at changed: %v -> %v", before["created_at"], after["created_at"])
		}
		if after["updated_at"] == nil {
			t.Fatalf("updated_at must be set after update")
		}
	}

	// 3) Delete con actor
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/customers/"+id, "recepcion", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d body=%s", st, string(body))
		}
	}

	// 4) Ya no está entre los activos, sí entre los eliminados
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/customers/"+id, "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/api/customers/deleted/"+id, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get deleted, got %d body=%s", st, string(body))
		}
		var rec map[string]any
		_ = json.Unmarshal(body, &rec)
		if rec["deleted_by"] != "recepcion" || rec["is_deleted"] != true {
			t.Fatalf("unexpected deleted record: %v", rec)
		}
	}

	// 5) Borrar dos veces es conflicto
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/customers/"+id, "", nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on second delete, got %d", st)
		}
	}

	// 6) Restore y vuelta a los activos, sin datos de borrado
	{
		st, body := doReq(t, ts.URL, "POST", "/api/customers/"+id+"/restore", "", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 restore, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "POST", "/api/customers/"+id+"/restore", "", nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on second restore, got %d", st)
		}

		st, body = doReq(t, ts.URL, "GET", "/api/customers/"+id, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 after restore, got %d", st)
		}
		var rec map[string]any
		_ = json.Unmarshal(body, &rec)
		if rec["deleted_at"] != nil || rec["deleted_by"] != nil || rec["is_deleted"] != false {
			t.Fatalf("delete fields must be cleared: %v", rec)
		}
	}

	// 7) Ids inexistentes
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/customers/999", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 deleting unknown id, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/customers/abc", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for non numeric id, got %d", st)
		}
	}
}

func TestHTTP_UpdateRejectsMismatchedIDs(t *testing.T) {
	ts := newServer(t)
	id := createCustomer(t, ts.URL, "", "22222222")

	payload := customerPayload("", "22222222", "Luis")
	payload["customer_id"] = 12345
	st, _ := doReq(t, ts.URL, "PUT", "/api/customers/"+id, "", payload)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for id mismatch, got %d", st)
	}
}

func TestHTTP_InvalidEnumsReportedTogether(t *testing.T) {
	ts := newServer(t)
	customerID := createCustomer(t, ts.URL, "", "33333333")

	st, body := doReq(t, ts.URL, "POST", "/api/patients", "", map[string]any{
		"animal_name":    "Milo",
		"species":        "Dog",
		"gender":         "Dragon",
		"classification": "Alien",
		"customer_id":    mustAtoi(t, customerID),
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", st, string(body))
	}
	errs := decodeErrors(t, body)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if !strings.Contains(errs[0], "Invalid Gender: 'Dragon'") || !strings.Contains(errs[1], "Invalid Classification: 'Alien'") {
		t.Fatalf("unexpected errors: %v", errs)
	}

	// Esquema y enums en la misma respuesta: 6 requeridos + 2 enums vacíos
	st, body = doReq(t, ts.URL, "POST", "/api/customers", "", map[string]any{})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}
	if errs := decodeErrors(t, body); len(errs) != 8 {
		t.Fatalf("expected 8 problems, got %v", errs)
	}

	payload := customerPayload("", "66666666", "")
	payload["customer_type"] = "Robot"
	payload["customer_status"] = "Gold"
	st, body = doReq(t, ts.URL, "POST", "/api/customers", "", payload)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", st, string(body))
	}
	errs = decodeErrors(t, body)
	want := []string{"first_names is required", "Invalid CustomerType: 'Robot'", "Invalid CustomerStatus: 'Gold'"}
	if len(errs) != len(want) {
		t.Fatalf("expected %d problems, got %v", len(want), errs)
	}
	for i, w := range want {
		if !strings.HasPrefix(errs[i], w) {
			t.Fatalf("problem %d: got %q, want prefix %q", i, errs[i], w)
		}
	}
}

func TestHTTP_UniquenessConflictsAndProbes(t *testing.T) {
	ts := newServer(t)
	id := createCustomer(t, ts.URL, "ana@vet.test", "44444444")

	// Email sin distinguir mayúsculas
	st, _ := doReq(t, ts.URL, "POST", "/api/customers", "", customerPayload("ANA@vet.test", "55555555", "Otra"))
	if st != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate email, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "POST", "/api/customers", "", customerPayload("otra@vet.test", "44444444", "Otra"))
	if st != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate document, got %d", st)
	}

	var probe struct {
		EmailExists      *bool `json:"email_exists"`
		DocumentIDExists *bool `json:"document_id_exists"`
	}
	_, body := doReq(t, ts.URL, "GET", "/api/customers/exists?document_id=44444444&exclude_id="+id, "", nil)
	_ = json.Unmarshal(body, &probe)
	if probe.DocumentIDExists == nil || *probe.DocumentIDExists {
		t.Fatalf("excluded id must not count: %s", string(body))
	}
	if probe.EmailExists != nil {
		t.Fatalf("email probe not requested: %s", string(body))
	}

	_, body = doReq(t, ts.URL, "GET", "/api/customers/exists?email=ana@vet.test", "", nil)
	probe.EmailExists = nil
	_ = json.Unmarshal(body, &probe)
	if probe.EmailExists == nil || !*probe.EmailExists {
		t.Fatalf("expected email to exist: %s", string(body))
	}

	st, _ = doReq(t, ts.URL, "GET", "/api/customers/exists", "", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for probe without params, got %d", st)
	}

	// Una vez eliminado, el documento queda libre
	doReq(t, ts.URL, "DELETE", "/api/customers/"+id, "", nil)
	createCustomer(t, ts.URL, "ana@vet.test", "44444444")

	// Y el restore del original choca
	st, _ = doReq(t, ts.URL, "POST", "/api/customers/"+id+"/restore", "", nil)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 restoring into a taken document, got %d", st)
	}
}

func TestHTTP_DeleteDoesNotCascade(t *testing.T) {
	ts := newServer(t)
	customerID := createCustomer(t, ts.URL, "", "66666666")
	patientID := createPatient(t, ts.URL, customerID, "Milo", time.Now().AddDate(-3, 0, 0))

	st, body := doReq(t, ts.URL, "GET", "/api/customers/"+customerID, "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var detail struct {
		Patients []map[string]any `json:"patients"`
	}
	_ = json.Unmarshal(body, &detail)
	if len(detail.Patients) != 1 || detail.Patients[0]["animal_name"] != "Milo" {
		t.Fatalf("customer detail must embed its patients: %s", string(body))
	}

	doReq(t, ts.URL, "DELETE", "/api/customers/"+customerID, "", nil)

	// El paciente sigue activo
	st, _ = doReq(t, ts.URL, "GET", "/api/patients/"+patientID, "", nil)
	if st != http.StatusOK {
		t.Fatalf("patient must stay active after owner delete, got %d", st)
	}
	// Pero el listado por customer exige customer activo
	st, _ = doReq(t, ts.URL, "GET", "/api/customers/"+customerID+"/patients", "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 listing patients of deleted customer, got %d", st)
	}
	// Referenciar un customer eliminado sigue siendo válido
	createPatient(t, ts.URL, customerID, "Luna", time.Now().AddDate(-1, 0, 0))

	// Un customer inexistente no
	st, body = doReq(t, ts.URL, "POST", "/api/patients", "", patientPayload(9999, "Rex", time.Now()))
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown customer, got %d body=%s", st, string(body))
	}
}

func TestHTTP_PatientSearch(t *testing.T) {
	ts := newServer(t)
	ana := createCustomer(t, ts.URL, "ana@vet.test", "70000001")
	luis := createCustomer(t, ts.URL, "luis@vet.test", "70000002")

	now := time.Now()
	createPatient(t, ts.URL, ana, "Alfa", now.AddDate(-2, 0, -30))
	createPatient(t, ts.URL, ana, "Bravo", now.AddDate(-5, 0, -30))
	createPatient(t, ts.URL, luis, "Charlie", now.AddDate(-9, 0, -30))
	createPatient(t, ts.URL, luis, "Delta", now.AddDate(-4, 0, -30))
	deleted := createPatient(t, ts.URL, luis, "Echo", now.AddDate(-4, 0, -30))
	doReq(t, ts.URL, "DELETE", "/api/patients/"+deleted, "", nil)

	// Ventana de edad
	{
		res := search(t, ts.URL, "min_age=3&max_age=4&owner_name=Ana")
		if len(res.Data) != 0 {
			t.Fatalf("expected no results, got %v", names(res.Data))
		}
		res = search(t, ts.URL, "min_age=5&max_age=8")
		if got := names(res.Data); got != "Bravo" {
			t.Fatalf("expected Bravo, got %s", got)
		}
		if res.Data[0]["age"] != float64(5) {
			t.Fatalf("expected computed age 5, got %v", res.Data[0]["age"])
		}
		if res.Data[0]["owner"] == nil {
			t.Fatalf("search results must carry the owner summary")
		}
	}

	// Paginación: cuenta antes de paginar, borrados excluidos
	{
		res := search(t, ts.URL, "page=2&page_size=2")
		if got := names(res.Data); got != "Charlie,Delta" {
			t.Fatalf("unexpected page 2: %s", got)
		}
		p := res.Pagination
		if p.TotalRecords != 4 || p.TotalPages != 2 || !p.HasPrevious || p.HasNext || p.CurrentPage != 2 {
			t.Fatalf("unexpected pagination: %+v", p)
		}
	}

	// Dueño por documento y estado
	{
		res := search(t, ts.URL, "owner_document_id=0002&status=active")
		if got := names(res.Data); got != "Charlie,Delta" {
			t.Fatalf("unexpected owner filter: %s", got)
		}
		res = search(t, ts.URL, "status=vip")
		if len(res.Data) != 0 {
			t.Fatalf("expected no vip owners, got %s", names(res.Data))
		}
	}

	// Parámetros inválidos: todos los problemas juntos
	{
		st, body := doReq(t, ts.URL, "GET", "/api/patients/search?page=-1&page_size=500&min_age=9&max_age=2&status=Gold", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", st)
		}
		if errs := decodeErrors(t, body); len(errs) != 4 {
			t.Fatalf("expected 4 problems, got %v", errs)
		}
	}

	// page=0 y page_size=0 explícitos se rechazan, no se reemplazan por defaults
	{
		st, body := doReq(t, ts.URL, "GET", "/api/patients/search?page=0&page_size=0", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", st, string(body))
		}
		if errs := decodeErrors(t, body); len(errs) != 2 {
			t.Fatalf("expected 2 problems, got %v", errs)
		}
	}

	// Catálogos
	{
		_, body := doReq(t, ts.URL, "GET", "/api/catalogs/species", "", nil)
		if strings.TrimSpace(string(body)) != `["Dog"]` {
			t.Fatalf("unexpected species catalog: %s", string(body))
		}
		_, body = doReq(t, ts.URL, "GET", "/api/patients/search/filters", "", nil)
		var f struct {
			Genders  []string `json:"genders"`
			Statuses []string `json:"statuses"`
		}
		_ = json.Unmarshal(body, &f)
		if len(f.Genders) != 3 || len(f.Statuses) != 5 {
			t.Fatalf("unexpected filters: %s", string(body))
		}
	}
}

func TestHTTP_PatientPhotoUpload(t *testing.T) {
	photos := blobstore.NewMemoryStore("/uploads")
	ts := httptest.NewServer(router.NewRouter(router.Options{Photos: photos}))
	defer ts.Close()

	customerID := createCustomer(t, ts.URL, "", "80000000")
	patientID := createPatient(t, ts.URL, customerID, "Milo", time.Now().AddDate(-1, 0, 0))

	st, body := uploadPhoto(t, ts.URL, patientID, "milo.PNG", []byte("fake-png"))
	if st != http.StatusOK {
		t.Fatalf("expected 200 upload, got %d body=%s", st, string(body))
	}
	var resp struct {
		PhotoURL string `json:"photo_url"`
	}
	_ = json.Unmarshal(body, &resp)
	prefix := "/uploads/patients/patient_" + patientID + "_"
	if !strings.HasPrefix(resp.PhotoURL, prefix) || !strings.HasSuffix(resp.PhotoURL, ".png") {
		t.Fatalf("unexpected photo url: %s", resp.PhotoURL)
	}
	if photos.Len() != 1 {
		t.Fatalf("expected one stored blob, got %d", photos.Len())
	}

	_, body = doReq(t, ts.URL, "GET", "/api/patients/"+patientID, "", nil)
	var rec map[string]any
	_ = json.Unmarshal(body, &rec)
	if rec["photo_url"] != resp.PhotoURL {
		t.Fatalf("photo url not persisted: %v", rec["photo_url"])
	}

	st, _ = uploadPhoto(t, ts.URL, patientID, "milo.bmp", []byte("x"))
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bmp, got %d", st)
	}
	st, _ = uploadPhoto(t, ts.URL, "999", "milo.png", []byte("x"))
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown patient, got %d", st)
	}
}

func TestHTTP_TreatmentsAndPrescriptions(t *testing.T) {
	ts := newServer(t)
	customerID := createCustomer(t, ts.URL, "", "90000000")
	patientID := createPatient(t, ts.URL, customerID, "Milo", time.Now().AddDate(-2, 0, 0))

	st, body := doReq(t, ts.URL, "POST", "/api/medicaments", "", map[string]any{
		"commercial_name":   "Drontal",
		"active_ingredient": "Praziquantel",
		"presentation":      "Tabletas",
		"laboratory":        "Bayer",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 medicament, got %d body=%s", st, string(body))
	}
	medicamentID := idFrom(t, body, "medicament_id")

	st, _ = doReq(t, ts.URL, "POST", "/api/medicaments", "", map[string]any{
		"commercial_name":   "DRONTAL",
		"active_ingredient": "x",
		"presentation":      "x",
		"laboratory":        "x",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate commercial name, got %d", st)
	}

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	st, body = doReq(t, ts.URL, "POST", "/api/treatments", "", map[string]any{
		"patient_id":          mustAtoi(t, patientID),
		"origin_attention_id": 1,
		"start_date":          start,
		"description":         "Desparasitación",
		"treatment_type":      "preventive",
		"treatment_status":    "inprogress",
		"objective":           "Control de parásitos",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 treatment, got %d body=%s", st, string(body))
	}
	treatmentID := idFrom(t, body, "treatment_id")

	rx := map[string]any{
		"treatment_id":         treatmentID,
		"medicament_id":        medicamentID,
		"dosage":               "1",
		"dosage_unit":          "tableta",
		"frequency":            "cada 3 meses",
		"administration_route": "oral",
		"start_date":           start,
		"prescription_status":  "Active",
	}
	st, body = doReq(t, ts.URL, "POST", "/api/prescriptions", "", rx)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 prescription, got %d body=%s", st, string(body))
	}

	// Referencias inexistentes: ambas reportadas
	rx["treatment_id"] = 777
	rx["medicament_id"] = 888
	st, body = doReq(t, ts.URL, "POST", "/api/prescriptions", "", rx)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown references, got %d", st)
	}
	if errs := decodeErrors(t, body); len(errs) != 2 {
		t.Fatalf("expected 2 reference errors, got %v", errs)
	}

	tid := fmt.Sprint(treatmentID)
	_, body = doReq(t, ts.URL, "GET", "/api/treatments/"+tid, "", nil)
	var detail struct {
		TreatmentStatus string           `json:"treatment_status"`
		Prescriptions   []map[string]any `json:"prescriptions"`
	}
	_ = json.Unmarshal(body, &detail)
	if detail.TreatmentStatus != "InProgress" || len(detail.Prescriptions) != 1 {
		t.Fatalf("unexpected treatment detail: %s", string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/api/treatments/"+tid+"/prescriptions", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t)
	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"storage":"memory"`) {
		t.Fatalf("unexpected health: %d %s", st, string(body))
	}
}

// helpers

func customerPayload(email, document, firstNames string) map[string]any {
	return map[string]any{
		"first_names":        firstNames,
		"paternal_last_name": "Soto",
		"maternal_last_name": "Rojas",
		"document_id":        document,
		"phone":              "999888777",
		"email":              email,
		"customer_type":      "individual",
		"customer_status":    "ACTIVE",
	}
}

func patientPayload(customerID int, name string, birth time.Time) map[string]any {
	return map[string]any{
		"animal_name":    name,
		"species":        "Dog",
		"breed":          "Mestizo",
		"gender":         "male",
		"birth_date":     birth.UTC(),
		"weight":         12.5,
		"classification": "domestic",
		"customer_id":    customerID,
	}
}

func createCustomer(t *testing.T, baseURL, email, document string) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/api/customers", "", customerPayload(email, document, "Ana"))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create customer, got %d body=%s", st, string(body))
	}
	return fmt.Sprint(idFrom(t, body, "customer_id"))
}

func createPatient(t *testing.T, baseURL, customerID, name string, birth time.Time) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/api/patients", "vet-1", patientPayload(mustAtoi(t, customerID), name, birth))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create patient, got %d body=%s", st, string(body))
	}
	return fmt.Sprint(idFrom(t, body, "patient_id"))
}

type searchResult struct {
	Data       []map[string]any `json:"data"`
	Pagination struct {
		CurrentPage  int  `json:"current_page"`
		TotalRecords int  `json:"total_records"`
		TotalPages   int  `json:"total_pages"`
		HasPrevious  bool `json:"has_previous"`
		HasNext      bool `json:"has_next"`
	} `json:"pagination"`
}

func search(t *testing.T, baseURL, query string) searchResult {
	t.Helper()
	st, body := doReq(t, baseURL, "GET", "/api/patients/search?"+query, "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 search, got %d body=%s", st, string(body))
	}
	var res searchResult
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	return res
}

func names(items []map[string]any) string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, fmt.Sprint(it["animal_name"]))
	}
	return strings.Join(out, ",")
}

func uploadPhoto(t *testing.T, baseURL, patientID, filename string, data []byte) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = fw.Write(data)
	_ = mw.Close()

	req, err := http.NewRequest("POST", baseURL+"/api/patients/"+patientID+"/photo", &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return send(t, req)
}

func idFrom(t *testing.T, body []byte, field string) int {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	v, ok := m[field].(float64)
	if !ok || v <= 0 {
		t.Fatalf("missing %s in body=%s", field, string(body))
	}
	return int(v)
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	var n int
	if _, err := fmt.Sscan(s, &n); err != nil {
		t.Fatalf("not a number: %q", s)
	}
	return n
}

func decodeErrors(t *testing.T, body []byte) []string {
	t.Helper()
	var resp struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode errors: %v body=%s", err, string(body))
	}
	return resp.Errors
}

func doReq(t *testing.T, baseURL, method, path, actor string, payload any) (int, []byte) {
	t.Helper()

	var r io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if actor != "" {
		req.Header.Set("X-User-ID", actor)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return send(t, req)
}

func send(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}
