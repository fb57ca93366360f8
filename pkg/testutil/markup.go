package testutil

// JobsMarkup is a job opening list, the markup the jobs widget runs against
const JobsMarkup = `<div class="aldryn-jobs">
  <ul class="js-jobs-list">
    <li class="job-opening" data-category="engineering"><a href="/jobs/backend-developer/">Backend Developer</a></li>
    <li class="job-opening" data-category="design"><a href="/jobs/product-designer/">Product Designer</a></li>
  </ul>
  <form class="js-jobs-application" action="/jobs/apply/" method="post">
    <button type="submit">Apply</button>
  </form>
</div>
`

// JobsData is a data fixture describing the same openings
const JobsData = `{"openings": [{"title": "Backend Developer", "category": "engineering"}, {"title": "Product Designer", "category": "design"}]}`
