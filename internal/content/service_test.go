package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"puredesign/internal/docstore"
	"puredesign/internal/models"
	"puredesign/internal/state"
)

func strptr(s string) *string { return &s }

func newService(t *testing.T) (*Service, *state.Store, *docstore.Memory) {
	t.Helper()
	st := state.New(nil)
	docs := docstore.NewMemory()
	return NewService(st, docs), st, docs
}

func TestUpdateHeroPersistsMergedSection(t *testing.T) {
	svc, st, docs := newService(t)
	ctx := context.Background()

	if err := svc.UpdateHero(ctx, models.HeroPatch{HeadlineFirst: strptr("NEW")}); err != nil {
		t.Fatalf("UpdateHero: %v", err)
	}

	// Local state is updated.
	if got := st.Content().Hero.HeadlineFirst; got != "NEW" {
		t.Errorf("local hero: got %q", got)
	}

	// The remote document holds the merged section plus the whole
	// translation tree.
	data, err := docs.Get(ctx, docstore.CollectionContent, docstore.ContentDocID)
	if err != nil {
		t.Fatalf("Get content doc: %v", err)
	}
	var remote struct {
		Hero         models.HeroBlock `json:"hero"`
		Translations map[models.Locale]struct {
			Hero models.LocaleHero `json:"hero"`
		} `json:"translations"`
	}
	if err := json.Unmarshal(data, &remote); err != nil {
		t.Fatalf("unmarshal content doc: %v", err)
	}
	if remote.Hero.HeadlineFirst != "NEW" {
		t.Errorf("remote hero: got %q", remote.Hero.HeadlineFirst)
	}
	if remote.Translations[models.LocaleENG].Hero.HeadlineFirst != "NEW" {
		t.Errorf("remote ENG hero: got %+v", remote.Translations[models.LocaleENG].Hero)
	}
	if len(remote.Translations) != len(models.Locales) {
		t.Errorf("translations: got %d locales, want the full tree (%d)",
			len(remote.Translations), len(models.Locales))
	}
}

func TestSectionSaveCarriesPendingTranslationEdits(t *testing.T) {
	svc, _, docs := newService(t)
	ctx := context.Background()

	// A local-only RUS edit, then an unrelated hero save. The save carries
	// the whole translation tree, making the RUS edit durable with it.
	if err := svc.UpdateTranslation(models.LocaleRUS, models.SectionPricing, map[string]any{"title": "Цены"}); err != nil {
		t.Fatalf("UpdateTranslation: %v", err)
	}
	if err := svc.UpdateHero(ctx, models.HeroPatch{HeadlineFirst: strptr("NEW")}); err != nil {
		t.Fatalf("UpdateHero: %v", err)
	}

	data, err := docs.Get(ctx, docstore.CollectionContent, docstore.ContentDocID)
	if err != nil {
		t.Fatalf("Get content doc: %v", err)
	}
	var remote struct {
		Translations map[models.Locale]models.LocaleContent `json:"translations"`
	}
	if err := json.Unmarshal(data, &remote); err != nil {
		t.Fatalf("unmarshal content doc: %v", err)
	}
	if got := remote.Translations[models.LocaleRUS].Pricing.Title; got != "Цены" {
		t.Errorf("RUS pricing title after hero save: got %q, want %q", got, "Цены")
	}
}

func TestUpdateHeroRemoteFailureKeepsLocalState(t *testing.T) {
	st := state.New(nil)
	svc := NewService(st, failingStore{})

	err := svc.UpdateHero(context.Background(), models.HeroPatch{Subhead: strptr("optimistic")})
	if err == nil {
		t.Fatal("expected remote error")
	}
	// The optimistic local write is not rolled back.
	if got := st.Content().Hero.Subhead; got != "optimistic" {
		t.Errorf("local hero after remote failure: got %q", got)
	}
}

func TestSectionMergesDoNotClobberEachOther(t *testing.T) {
	svc, _, docs := newService(t)
	ctx := context.Background()

	if err := svc.UpdateHero(ctx, models.HeroPatch{HeadlineFirst: strptr("H")}); err != nil {
		t.Fatalf("UpdateHero: %v", err)
	}
	if err := svc.UpdateContact(ctx, models.ContactPatch{Email: strptr("x@y.z")}); err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}

	data, err := docs.Get(ctx, docstore.CollectionContent, docstore.ContentDocID)
	if err != nil {
		t.Fatalf("Get content doc: %v", err)
	}
	var remote struct {
		Hero    models.HeroBlock    `json:"hero"`
		Contact models.ContactBlock `json:"contact"`
	}
	if err := json.Unmarshal(data, &remote); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if remote.Hero.HeadlineFirst != "H" {
		t.Errorf("hero lost by contact merge: %+v", remote.Hero)
	}
	if remote.Contact.Email != "x@y.z" {
		t.Errorf("contact: %+v", remote.Contact)
	}
}

func TestSaveTranslationsPersistsLocalEdits(t *testing.T) {
	svc, _, docs := newService(t)
	ctx := context.Background()

	// Local-only edits first.
	if err := svc.UpdateTranslation(models.LocaleRUS, models.SectionPricing, map[string]any{"title": "Цены"}); err != nil {
		t.Fatalf("UpdateTranslation: %v", err)
	}
	if err := svc.UpdateServicePackage(models.LocaleENG, 0, models.ServicePackagePatch{Value: strptr("$999")}); err != nil {
		t.Fatalf("UpdateServicePackage: %v", err)
	}
	if _, err := docs.Get(ctx, docstore.CollectionContent, docstore.ContentDocID); !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("local-only edit reached remote store: %v", err)
	}

	if err := svc.SaveTranslations(ctx); err != nil {
		t.Fatalf("SaveTranslations: %v", err)
	}

	data, err := docs.Get(ctx, docstore.CollectionContent, docstore.ContentDocID)
	if err != nil {
		t.Fatalf("Get content doc: %v", err)
	}
	var remote struct {
		Translations map[models.Locale]models.LocaleContent `json:"translations"`
	}
	if err := json.Unmarshal(data, &remote); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := remote.Translations[models.LocaleRUS].Pricing.Title; got != "Цены" {
		t.Errorf("RUS pricing title: got %q", got)
	}
	if got := remote.Translations[models.LocaleENG].Services.Packages[0].Value; got != "$999" {
		t.Errorf("ENG package value: got %q", got)
	}
	if len(remote.Translations) != len(models.Locales) {
		t.Errorf("translations: got %d locales, want %d", len(remote.Translations), len(models.Locales))
	}
}

func TestFetchGlobalContent(t *testing.T) {
	svc, st, docs := newService(t)
	ctx := context.Background()

	remote := map[string]any{
		"hero": models.HeroBlock{HeadlineFirst: "REMOTE", HeadlineSecond: "WINS", Subhead: "sub"},
		"translations": map[string]any{
			"KAZ": map[string]any{"pricing": map[string]any{"title": "Бағалар"}},
		},
	}
	data, _ := json.Marshal(remote)
	if err := docs.Merge(ctx, docstore.CollectionContent, docstore.ContentDocID, data); err != nil {
		t.Fatalf("seed remote doc: %v", err)
	}

	svc.FetchGlobalContent(ctx)

	c := st.Content()
	if c.Hero.HeadlineFirst != "REMOTE" {
		t.Errorf("hero: got %+v", c.Hero)
	}
	if got := c.Translations[models.LocaleKAZ].Pricing.Title; got != "Бағалар" {
		t.Errorf("KAZ pricing: got %q", got)
	}
	// Partial remote locale must not blank the rest of the KAZ tree.
	if c.Translations[models.LocaleKAZ].Nav.Works == "" {
		t.Error("KAZ nav blanked by partial remote locale")
	}
}

func TestFetchGlobalContentMissingDocIsNoOp(t *testing.T) {
	svc, st, _ := newService(t)
	before := st.Content()

	svc.FetchGlobalContent(context.Background())

	after := st.Content()
	if after.Hero != before.Hero {
		t.Errorf("hero changed: %+v", after.Hero)
	}
}

func TestFetchProjects(t *testing.T) {
	svc, st, docs := newService(t)
	ctx := context.Background()

	older, _ := json.Marshal(models.Project{Title: "Older"})
	newer, _ := json.Marshal(models.Project{Title: "Newer"})
	olderID, err := docs.Create(ctx, docstore.CollectionProjects, older)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	newerID, err := docs.Create(ctx, docstore.CollectionProjects, newer)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc.FetchProjects(ctx)

	got := st.Projects()
	if len(got) != 2 {
		t.Fatalf("projects: %+v", got)
	}
	if got[0].ID != newerID || got[1].ID != olderID {
		t.Errorf("order: got [%s %s], want newest first", got[0].ID, got[1].ID)
	}
	if got[0].Title != "Newer" {
		t.Errorf("title: got %q", got[0].Title)
	}
}

func TestAddProjectUsesStoreAssignedID(t *testing.T) {
	svc, st, docs := newService(t)
	ctx := context.Background()

	created, err := svc.AddProject(ctx, models.Project{ID: "client-side-junk", Title: "Case"})
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	if created.ID == "" || created.ID == "client-side-junk" {
		t.Errorf("id: got %q, want store-assigned", created.ID)
	}

	local := st.Projects()
	if len(local) != 1 || local[0].ID != created.ID {
		t.Errorf("local projects: %+v", local)
	}
	if _, err := docs.Get(ctx, docstore.CollectionProjects, created.ID); err != nil {
		t.Errorf("remote project missing: %v", err)
	}
}

func TestAddProjectRemoteFailureLeavesLocalUntouched(t *testing.T) {
	st := state.New(nil)
	svc := NewService(st, failingStore{})

	if _, err := svc.AddProject(context.Background(), models.Project{Title: "Case"}); err == nil {
		t.Fatal("expected remote error")
	}
	if got := st.Projects(); len(got) != 0 {
		t.Errorf("local projects after failed create: %+v", got)
	}
}

func TestUpdateAndDeleteProject(t *testing.T) {
	svc, st, docs := newService(t)
	ctx := context.Background()

	created, err := svc.AddProject(ctx, models.Project{Title: "Case", Category: "Branding"})
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}

	if err := svc.UpdateProject(ctx, created.ID, models.ProjectPatch{Title: strptr("Case v2")}); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if p, _ := st.Project(created.ID); p.Title != "Case v2" {
		t.Errorf("local title: got %q", p.Title)
	}
	data, err := docs.Get(ctx, docstore.CollectionProjects, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var remote models.Project
	if err := json.Unmarshal(data, &remote); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if remote.Title != "Case v2" || remote.Category != "Branding" {
		t.Errorf("remote after merge: %+v", remote)
	}

	if err := svc.DeleteProject(ctx, created.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if _, ok := st.Project(created.ID); ok {
		t.Error("project still in local state")
	}
	if _, err := docs.Get(ctx, docstore.CollectionProjects, created.ID); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("remote doc after delete: %v", err)
	}
}

func TestUpdateProjectRemoteFailureLeavesLocalUntouched(t *testing.T) {
	st := state.New(nil)
	st.PrependProject(models.Project{ID: "p1", Title: "Case"})
	svc := NewService(st, failingStore{})

	err := svc.UpdateProject(context.Background(), "p1", models.ProjectPatch{Title: strptr("Changed")})
	if err == nil {
		t.Fatal("expected remote error")
	}
	if p, _ := st.Project("p1"); p.Title != "Case" {
		t.Errorf("local title after failed merge: got %q, want %q", p.Title, "Case")
	}
}

func TestDeleteProjectRemoteFailureLeavesLocalUntouched(t *testing.T) {
	st := state.New(nil)
	st.PrependProject(models.Project{ID: "p1", Title: "Case"})
	svc := NewService(st, failingStore{})

	if err := svc.DeleteProject(context.Background(), "p1"); err == nil {
		t.Fatal("expected remote error")
	}
	if _, ok := st.Project("p1"); !ok {
		t.Error("project removed locally despite failed remote delete")
	}
}

// failingStore rejects every operation, standing in for an unreachable
// document store.
type failingStore struct{}

var errRemoteDown = errors.New("document store unreachable")

func (failingStore) Get(context.Context, string, string) (json.RawMessage, error) {
	return nil, errRemoteDown
}

func (failingStore) List(context.Context, string) ([]docstore.Document, error) {
	return nil, errRemoteDown
}

func (failingStore) Create(context.Context, string, json.RawMessage) (string, error) {
	return "", errRemoteDown
}

func (failingStore) Merge(context.Context, string, string, json.RawMessage) error {
	return errRemoteDown
}

func (failingStore) Delete(context.Context, string, string) error {
	return errRemoteDown
}
